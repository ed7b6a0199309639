package commands

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/core/domain/model/settlement"
	"mandi/internal/pkg/guard"
)

var ErrSettleOwnerCommandIsNotConstructed = errors.New(
	"SettleOwnerCommand must be created via NewSettleOwnerCommand constructor",
)

// SettleOwnerCommand represents the owner-phase settlement of one weighed
// trip: sute, base rate, brokerage and EGB.
type SettleOwnerCommand struct { //nolint:recvcheck //using for validation
	actor        role.Role
	entryID      kernel.UUID
	tripID       kernel.UUID
	settlementID kernel.UUID
	input        settlement.OwnerInput

	guard guard.ConstructorGuard
}

// NewSettleOwnerCommand creates a command to run the owner settlement phase.
func NewSettleOwnerCommand(
	actor role.Role,
	entryID, tripID, settlementID kernel.UUID,
	input settlement.OwnerInput,
) (SettleOwnerCommand, error) {
	cmd := SettleOwnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setTripID(tripID),
		cmd.setSettlementID(settlementID),
		cmd.setInput(input),
	); err != nil {
		return SettleOwnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleOwnerCommand) Validate() error {
	return c.guard.Validate(ErrSettleOwnerCommandIsNotConstructed)
}

func (c SettleOwnerCommand) Actor() role.Role               { return c.actor }
func (c SettleOwnerCommand) EntryID() kernel.UUID           { return c.entryID }
func (c SettleOwnerCommand) TripID() kernel.UUID            { return c.tripID }
func (c SettleOwnerCommand) SettlementID() kernel.UUID      { return c.settlementID }
func (c SettleOwnerCommand) Input() settlement.OwnerInput   { return c.input }

func (c *SettleOwnerCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *SettleOwnerCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *SettleOwnerCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	c.tripID = tripID
	return nil
}

func (c *SettleOwnerCommand) setSettlementID(settlementID kernel.UUID) error {
	if err := settlementID.Validate(); err != nil {
		return err
	}
	c.settlementID = settlementID
	return nil
}

func (c *SettleOwnerCommand) setInput(input settlement.OwnerInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	c.input = input
	return nil
}
