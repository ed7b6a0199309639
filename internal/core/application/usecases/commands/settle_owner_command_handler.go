package commands

import (
	"context"

	"mandi/internal/core/domain/model/role"
)

// SettleOwnerCommandHandler runs the owner settlement phase over one trip.
type SettleOwnerCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewSettleOwnerCommandHandler creates a handler for owner settlements.
func NewSettleOwnerCommandHandler(uowFactory EntryUoWFactory) SettleOwnerCommandHandler {
	return SettleOwnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the owner settlement command.
func (h *SettleOwnerCommandHandler) Handle(ctx context.Context, cmd SettleOwnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpSettleOwner, cmd.Actor()); err != nil {
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

	if err = e.SettleOwner(cmd.SettlementID(), cmd.TripID(), cmd.Input()); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
