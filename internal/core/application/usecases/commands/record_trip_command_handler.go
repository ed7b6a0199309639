package commands

import (
	"context"

	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/role"
)

// RecordTripCommandHandler registers a delivery trip under the allotment.
type RecordTripCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewRecordTripCommandHandler creates a handler for trip recording.
func NewRecordTripCommandHandler(uowFactory EntryUoWFactory) RecordTripCommandHandler {
	return RecordTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip recording command.
func (h *RecordTripCommandHandler) Handle(ctx context.Context, cmd RecordTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpRecordTrip, cmd.Actor()); err != nil {
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

	t, err := lot.NewTrip(
		cmd.TripID(),
		cmd.LorryNumber(),
		cmd.Bags(),
		cmd.Cut(), cmd.Bend(),
		cmd.Remarks(),
	)
	if err != nil {
		return err
	}

	if err = e.RecordTrip(t); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
