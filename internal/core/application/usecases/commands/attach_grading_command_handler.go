package commands

import (
	"context"

	"mandi/internal/core/domain/model/grading"
	"mandi/internal/core/domain/model/role"
)

// AttachGradingCommandHandler records grading results on an intake entry.
type AttachGradingCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewAttachGradingCommandHandler creates a handler for grading attachment.
func NewAttachGradingCommandHandler(uowFactory EntryUoWFactory) AttachGradingCommandHandler {
	return AttachGradingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the grading attachment command.
func (h *AttachGradingCommandHandler) Handle(ctx context.Context, cmd AttachGradingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpAttachGrading, cmd.Actor()); err != nil {
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

	g, err := grading.NewGradingResult(
		cmd.GradingID(),
		cmd.Moisture(),
		cmd.CutOne(), cmd.BendOne(), cmd.CutTwo(), cmd.BendTwo(),
		cmd.MixPercent(), cmd.DefectPercent(),
		cmd.GradedBy(),
	)
	if err != nil {
		return err
	}

	if err = e.AttachGrading(g); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
