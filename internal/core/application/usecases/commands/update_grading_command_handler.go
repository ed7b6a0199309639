package commands

import (
	"context"

	"mandi/internal/core/domain/model/role"
)

// UpdateGradingCommandHandler corrects grading results in place.
type UpdateGradingCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewUpdateGradingCommandHandler creates a handler for grading corrections.
func NewUpdateGradingCommandHandler(uowFactory EntryUoWFactory) UpdateGradingCommandHandler {
	return UpdateGradingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the grading correction command.
func (h *UpdateGradingCommandHandler) Handle(ctx context.Context, cmd UpdateGradingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpUpdateGrading, cmd.Actor()); err != nil {
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

	if err = e.UpdateGrading(
		cmd.Moisture(),
		cmd.CutOne(), cmd.BendOne(), cmd.CutTwo(), cmd.BendTwo(),
		cmd.MixPercent(), cmd.DefectPercent(),
		cmd.GradedBy(),
	); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
