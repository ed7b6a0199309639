package commands

import (
	"context"

	"mandi/internal/core/domain/model/role"
)

// SettleManagerCommandHandler runs the manager settlement phase over one
// trip; once the closed lot is fully settled the entry moves to review.
type SettleManagerCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewSettleManagerCommandHandler creates a handler for manager settlements.
func NewSettleManagerCommandHandler(uowFactory EntryUoWFactory) SettleManagerCommandHandler {
	return SettleManagerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manager settlement command.
func (h *SettleManagerCommandHandler) Handle(ctx context.Context, cmd SettleManagerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpSettleManager, cmd.Actor()); err != nil {
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

	if err = e.SettleManager(cmd.TripID(), cmd.Input()); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
