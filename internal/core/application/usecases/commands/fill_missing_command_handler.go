package commands

import (
	"context"

	"mandi/internal/core/domain/model/role"
)

// FillMissingCommandHandler writes manager values into delegated offer fields.
type FillMissingCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewFillMissingCommandHandler creates a handler for delegation fills.
func NewFillMissingCommandHandler(uowFactory EntryUoWFactory) FillMissingCommandHandler {
	return FillMissingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delegation fill command.
func (h *FillMissingCommandHandler) Handle(ctx context.Context, cmd FillMissingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpFillMissing, cmd.Actor()); err != nil {
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

	if err = e.FillMissing(cmd.Values()); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
