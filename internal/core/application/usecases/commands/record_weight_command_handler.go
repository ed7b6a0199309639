package commands

import (
	"context"

	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/role"
)

// RecordWeightCommandHandler attaches the weighbridge outcome to a trip.
type RecordWeightCommandHandler struct {
	uowFactory EntryUoWFactory
}

// NewRecordWeightCommandHandler creates a handler for weight recording.
func NewRecordWeightCommandHandler(uowFactory EntryUoWFactory) RecordWeightCommandHandler {
	return RecordWeightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the weight recording command.
func (h *RecordWeightCommandHandler) Handle(ctx context.Context, cmd RecordWeightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := role.Authorize(role.OpRecordWeight, cmd.Actor()); err != nil {
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

	w, err := lot.NewWeightRecord(cmd.WeightID(), cmd.GrossWeight(), cmd.TareWeight(), cmd.Target())
	if err != nil {
		return err
	}

	if err = e.RecordWeight(cmd.TripID(), w); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
