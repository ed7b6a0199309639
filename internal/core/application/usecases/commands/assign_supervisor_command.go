package commands

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/errs"
	"mandi/internal/pkg/guard"
)

var ErrAssignSupervisorCommandIsNotConstructed = errors.New(
	"AssignSupervisorCommand must be created via NewAssignSupervisorCommand constructor",
)

// AssignSupervisorCommand represents a request to hand the lot to a
// supervisor. A first assignment requires a complete offer; while the lot is
// open the assignment may be changed.
type AssignSupervisorCommand struct { //nolint:recvcheck //using for validation
	actor        role.Role
	entryID      kernel.UUID
	allotmentID  kernel.UUID
	supervisorID kernel.UUID
	allottedBags int

	guard guard.ConstructorGuard
}

// NewAssignSupervisorCommand creates a command to assign a supervisor.
func NewAssignSupervisorCommand(
	actor role.Role,
	entryID, allotmentID, supervisorID kernel.UUID,
	allottedBags int,
) (AssignSupervisorCommand, error) {
	cmd := AssignSupervisorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setAllotmentID(allotmentID),
		cmd.setSupervisorID(supervisorID),
		cmd.setAllottedBags(allottedBags),
	); err != nil {
		return AssignSupervisorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignSupervisorCommand) Validate() error {
	return c.guard.Validate(ErrAssignSupervisorCommandIsNotConstructed)
}

func (c AssignSupervisorCommand) Actor() role.Role          { return c.actor }
func (c AssignSupervisorCommand) EntryID() kernel.UUID      { return c.entryID }
func (c AssignSupervisorCommand) AllotmentID() kernel.UUID  { return c.allotmentID }
func (c AssignSupervisorCommand) SupervisorID() kernel.UUID { return c.supervisorID }
func (c AssignSupervisorCommand) AllottedBags() int         { return c.allottedBags }

func (c *AssignSupervisorCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AssignSupervisorCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *AssignSupervisorCommand) setAllotmentID(allotmentID kernel.UUID) error {
	if err := allotmentID.Validate(); err != nil {
		return err
	}
	c.allotmentID = allotmentID
	return nil
}

func (c *AssignSupervisorCommand) setSupervisorID(supervisorID kernel.UUID) error {
	if err := supervisorID.Validate(); err != nil {
		return err
	}
	c.supervisorID = supervisorID
	return nil
}

func (c *AssignSupervisorCommand) setAllottedBags(allottedBags int) error {
	if allottedBags <= 0 {
		return errs.NewValueIsInvalidError("allottedBags")
	}
	c.allottedBags = allottedBags
	return nil
}
