package commands

import (
	"errors"
	"time"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/errs"
	"mandi/internal/pkg/guard"
)

var ErrCloseLotCommandIsNotConstructed = errors.New(
	"CloseLotCommand must be created via NewCloseLotCommand constructor",
)

// CloseLotCommand represents a request to freeze the trip list of an
// allotment. Weighing and settlement of recorded trips continue.
type CloseLotCommand struct { //nolint:recvcheck //using for validation
	actor    role.Role
	entryID  kernel.UUID
	closedAt time.Time

	guard guard.ConstructorGuard
}

// NewCloseLotCommand creates a command to close the lot.
func NewCloseLotCommand(actor role.Role, entryID kernel.UUID, closedAt time.Time) (CloseLotCommand, error) {
	cmd := CloseLotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setClosedAt(closedAt),
	); err != nil {
		return CloseLotCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseLotCommand) Validate() error {
	return c.guard.Validate(ErrCloseLotCommandIsNotConstructed)
}

func (c CloseLotCommand) Actor() role.Role     { return c.actor }
func (c CloseLotCommand) EntryID() kernel.UUID { return c.entryID }
func (c CloseLotCommand) ClosedAt() time.Time  { return c.closedAt }

func (c *CloseLotCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CloseLotCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *CloseLotCommand) setClosedAt(closedAt time.Time) error {
	if closedAt.IsZero() {
		return errs.NewValueIsRequiredError("closedAt")
	}
	c.closedAt = closedAt
	return nil
}
