package commands

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/errs"
	"mandi/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordTripCommandIsNotConstructed = errors.New(
	"RecordTripCommand must be created via NewRecordTripCommand constructor",
)

// RecordTripCommand represents a supervisor's report of one lorry load
// dispatched under the allotment.
type RecordTripCommand struct { //nolint:recvcheck //using for validation
	actor       role.Role
	entryID     kernel.UUID
	tripID      kernel.UUID
	lorryNumber string
	bags        int
	cut         decimal.Decimal
	bend        decimal.Decimal
	remarks     string

	guard guard.ConstructorGuard
}

// NewRecordTripCommand creates a command to record a delivery trip.
func NewRecordTripCommand(
	actor role.Role,
	entryID, tripID kernel.UUID,
	lorryNumber string,
	bags int,
	cut, bend decimal.Decimal,
	remarks string,
) (RecordTripCommand, error) {
	cmd := RecordTripCommand{
		cut:     cut,
		bend:    bend,
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setTripID(tripID),
		cmd.setLorryNumber(lorryNumber),
		cmd.setBags(bags),
	); err != nil {
		return RecordTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordTripCommand) Validate() error {
	return c.guard.Validate(ErrRecordTripCommandIsNotConstructed)
}

func (c RecordTripCommand) Actor() role.Role      { return c.actor }
func (c RecordTripCommand) EntryID() kernel.UUID  { return c.entryID }
func (c RecordTripCommand) TripID() kernel.UUID   { return c.tripID }
func (c RecordTripCommand) LorryNumber() string   { return c.lorryNumber }
func (c RecordTripCommand) Bags() int             { return c.bags }
func (c RecordTripCommand) Cut() decimal.Decimal  { return c.cut }
func (c RecordTripCommand) Bend() decimal.Decimal { return c.bend }
func (c RecordTripCommand) Remarks() string       { return c.remarks }

func (c *RecordTripCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RecordTripCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *RecordTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	c.tripID = tripID
	return nil
}

func (c *RecordTripCommand) setLorryNumber(lorryNumber string) error {
	if lorryNumber == "" {
		return errs.NewValueIsRequiredError("lorryNumber")
	}
	c.lorryNumber = lorryNumber
	return nil
}

func (c *RecordTripCommand) setBags(bags int) error {
	if bags <= 0 {
		return errs.NewValueIsInvalidError("bags")
	}
	c.bags = bags
	return nil
}
