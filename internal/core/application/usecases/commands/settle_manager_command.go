package commands

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/core/domain/model/settlement"
	"mandi/internal/pkg/guard"
)

var ErrSettleManagerCommandIsNotConstructed = errors.New(
	"SettleManagerCommand must be created via NewSettleManagerCommand constructor",
)

// SettleManagerCommand represents the manager-phase settlement of one trip:
// freight and hamali, finalizing the grand total and average.
type SettleManagerCommand struct { //nolint:recvcheck //using for validation
	actor   role.Role
	entryID kernel.UUID
	tripID  kernel.UUID
	input   settlement.ManagerInput

	guard guard.ConstructorGuard
}

// NewSettleManagerCommand creates a command to run the manager settlement
// phase.
func NewSettleManagerCommand(
	actor role.Role,
	entryID, tripID kernel.UUID,
	input settlement.ManagerInput,
) (SettleManagerCommand, error) {
	cmd := SettleManagerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setTripID(tripID),
		cmd.setInput(input),
	); err != nil {
		return SettleManagerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleManagerCommand) Validate() error {
	return c.guard.Validate(ErrSettleManagerCommandIsNotConstructed)
}

func (c SettleManagerCommand) Actor() role.Role               { return c.actor }
func (c SettleManagerCommand) EntryID() kernel.UUID           { return c.entryID }
func (c SettleManagerCommand) TripID() kernel.UUID            { return c.tripID }
func (c SettleManagerCommand) Input() settlement.ManagerInput { return c.input }

func (c *SettleManagerCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *SettleManagerCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *SettleManagerCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	c.tripID = tripID
	return nil
}

func (c *SettleManagerCommand) setInput(input settlement.ManagerInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	c.input = input
	return nil
}
