package commands

import (
	"context"

	"mandi/internal/core/domain/model/pricing"
	"mandi/internal/core/domain/model/role"
)

// SetOfferCommandHandler records or replaces the offer on a pricing entry.
type SetOfferCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewSetOfferCommandHandler creates a handler for offers.
func NewSetOfferCommandHandler(uowFactory EntryUoWFactory) SetOfferCommandHandler {
	return SetOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer command.
func (h *SetOfferCommandHandler) Handle(ctx context.Context, cmd SetOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpSetOffer, cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entryRepo := uow.EntryRepository()
	e, err := entryRepo.Get(ctx, cmd.EntryID())
	if err != nil {
		return err
	}

	o, err := pricing.NewOffer(
		cmd.OfferID(),
		cmd.OfferRate(),
		cmd.BaseRateType(),
		cmd.BaseRateUnit(),
		cmd.BaseRateValue(),
		cmd.CustomDivisor(),
		cmd.EgbValue(),
		cmd.Delegation(),
	)
	if err != nil {
		return err
	}

	if err = e.SetOffer(o); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
