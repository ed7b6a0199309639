package commands

import (
	"context"

	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/core/ports"
	"mandi/internal/pkg/errs"
)

// CreateEntryCommandHandler handles the registration of new sample entries.
// The declared variety must be known to the variety catalog; everything else
// is validated by the aggregate.
type CreateEntryCommandHandler struct {
	uowFactory EntryUoWFactory
	varieties  ports.VarietyCatalog
}

// NewCreateEntryCommandHandler creates a handler for entry registration.
func NewCreateEntryCommandHandler(uowFactory EntryUoWFactory, varieties ports.VarietyCatalog) CreateEntryCommandHandler {
	return CreateEntryCommandHandler{
		uowFactory: uowFactory,
		varieties:  varieties,
	}
}

// Handle processes the entry registration command.
func (h *CreateEntryCommandHandler) Handle(ctx context.Context, cmd CreateEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpCreateEntry, cmd.Actor()); err != nil {
		return err
	}

	known, err := h.varieties.Exists(ctx, cmd.Variety())
	if err != nil {
		return err
	}
	if !known {
		return errs.NewObjectNotFoundError("variety", cmd.Variety())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	e, err := entry.NewEntry(
		cmd.EntryID(),
		cmd.EntryDate(),
		cmd.EntryType(),
		cmd.Bags(),
		cmd.Packaging(),
		cmd.Variety(),
	)
	if err != nil {
		return err
	}

	if err = uow.EntryRepository().Add(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
