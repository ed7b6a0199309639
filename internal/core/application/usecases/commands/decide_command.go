package commands

import (
	"errors"

	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/guard"
)

var ErrDecideCommandIsNotConstructed = errors.New(
	"DecideCommand must be created via NewDecideCommand constructor",
)

// DecideCommand represents the owner's verdict on a graded lot.
type DecideCommand struct { //nolint:recvcheck //using for validation
	actor    role.Role
	entryID  kernel.UUID
	decision entry.LotDecision

	guard guard.ConstructorGuard
}

// NewDecideCommand creates a command to record the lot decision.
func NewDecideCommand(actor role.Role, entryID kernel.UUID, decision entry.LotDecision) (DecideCommand, error) {
	cmd := DecideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setDecision(decision),
	); err != nil {
		return DecideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideCommand) Validate() error {
	return c.guard.Validate(ErrDecideCommandIsNotConstructed)
}

func (c DecideCommand) Actor() role.Role            { return c.actor }
func (c DecideCommand) EntryID() kernel.UUID        { return c.entryID }
func (c DecideCommand) Decision() entry.LotDecision { return c.decision }

func (c *DecideCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *DecideCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *DecideCommand) setDecision(decision entry.LotDecision) error {
	if err := decision.Validate(); err != nil {
		return err
	}
	c.decision = decision
	return nil
}
