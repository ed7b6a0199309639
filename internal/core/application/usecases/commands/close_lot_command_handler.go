package commands

import (
	"context"

	"mandi/internal/core/domain/model/role"
)

// CloseLotCommandHandler freezes the trip list of the allotment.
type CloseLotCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewCloseLotCommandHandler creates a handler for lot closing.
func NewCloseLotCommandHandler(uowFactory EntryUoWFactory) CloseLotCommandHandler {
	return CloseLotCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lot closing command.
func (h *CloseLotCommandHandler) Handle(ctx context.Context, cmd CloseLotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpCloseLot, cmd.Actor()); err != nil {
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

	if err = e.CloseLot(cmd.ClosedAt()); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
