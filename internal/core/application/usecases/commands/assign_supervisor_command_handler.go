package commands

import (
	"context"

	"mandi/internal/core/domain/model/role"
)

// AssignSupervisorCommandHandler hands the lot to a supervisor once the
// offer's delegated fields are all filled.
type AssignSupervisorCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewAssignSupervisorCommandHandler creates a handler for supervisor
// assignment.
func NewAssignSupervisorCommandHandler(uowFactory EntryUoWFactory) AssignSupervisorCommandHandler {
	return AssignSupervisorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supervisor assignment command.
func (h *AssignSupervisorCommandHandler) Handle(ctx context.Context, cmd AssignSupervisorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpAssignSupervisor, cmd.Actor()); err != nil {
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

	if err = e.AssignSupervisor(cmd.AllotmentID(), cmd.SupervisorID(), cmd.AllottedBags()); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
