package commands

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordWeightCommandIsNotConstructed = errors.New(
	"RecordWeightCommand must be created via NewRecordWeightCommand constructor",
)

// RecordWeightCommand represents the weighbridge outcome of one trip,
// including the storage destination of the weighed produce.
type RecordWeightCommand struct { //nolint:recvcheck //using for validation
	actor       role.Role
	entryID     kernel.UUID
	tripID      kernel.UUID
	weightID    kernel.UUID
	grossWeight decimal.Decimal
	tareWeight  decimal.Decimal
	target      lot.StorageTarget

	guard guard.ConstructorGuard
}

// NewRecordWeightCommand creates a command to record a weighbridge outcome.
// The gross/tare relation is enforced by the weight record itself.
func NewRecordWeightCommand(
	actor role.Role,
	entryID, tripID, weightID kernel.UUID,
	grossWeight, tareWeight decimal.Decimal,
	target lot.StorageTarget,
) (RecordWeightCommand, error) {
	cmd := RecordWeightCommand{
		grossWeight: grossWeight,
		tareWeight:  tareWeight,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setTripID(tripID),
		cmd.setWeightID(weightID),
		cmd.setTarget(target),
	); err != nil {
		return RecordWeightCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordWeightCommand) Validate() error {
	return c.guard.Validate(ErrRecordWeightCommandIsNotConstructed)
}

func (c RecordWeightCommand) Actor() role.Role             { return c.actor }
func (c RecordWeightCommand) EntryID() kernel.UUID         { return c.entryID }
func (c RecordWeightCommand) TripID() kernel.UUID          { return c.tripID }
func (c RecordWeightCommand) WeightID() kernel.UUID        { return c.weightID }
func (c RecordWeightCommand) GrossWeight() decimal.Decimal { return c.grossWeight }
func (c RecordWeightCommand) TareWeight() decimal.Decimal  { return c.tareWeight }
func (c RecordWeightCommand) Target() lot.StorageTarget    { return c.target }

func (c *RecordWeightCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RecordWeightCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *RecordWeightCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	c.tripID = tripID
	return nil
}

func (c *RecordWeightCommand) setWeightID(weightID kernel.UUID) error {
	if err := weightID.Validate(); err != nil {
		return err
	}
	c.weightID = weightID
	return nil
}

func (c *RecordWeightCommand) setTarget(target lot.StorageTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
