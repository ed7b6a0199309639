package commands

import (
	"context"

	"mandi/internal/core/domain/model/role"
)

// DecideCommandHandler records the lot decision and routes the entry to
// cooking, pricing or failure.
type DecideCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewDecideCommandHandler creates a handler for lot decisions.
func NewDecideCommandHandler(uowFactory EntryUoWFactory) DecideCommandHandler {
	return DecideCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lot decision command.
func (h *DecideCommandHandler) Handle(ctx context.Context, cmd DecideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpDecide, cmd.Actor()); err != nil {
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

	if err = e.Decide(cmd.Decision()); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
