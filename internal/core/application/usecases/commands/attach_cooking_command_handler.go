package commands

import (
	"context"

	"mandi/internal/core/domain/model/grading"
	"mandi/internal/core/domain/model/role"
)

// AttachCookingCommandHandler records the cook report on a cooking entry.
type AttachCookingCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewAttachCookingCommandHandler creates a handler for cook reports.
func NewAttachCookingCommandHandler(uowFactory EntryUoWFactory) AttachCookingCommandHandler {
	return AttachCookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cook report command.
func (h *AttachCookingCommandHandler) Handle(ctx context.Context, cmd AttachCookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpAttachCooking, cmd.Actor()); err != nil {
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

	c, err := grading.NewCookingResult(cmd.CookingID(), cmd.Status(), cmd.Remarks())
	if err != nil {
		return err
	}

	if err = e.AttachCooking(c); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
