package commands

import (
	"errors"
	"time"

	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/errs"
	"mandi/internal/pkg/guard"
)

var ErrCreateEntryCommandIsNotConstructed = errors.New(
	"CreateEntryCommand must be created via NewCreateEntryCommand constructor",
)

// CreateEntryCommand represents a request to register a new sample entry at
// intake. The entry starts in the intake stage with no grading attached.
type CreateEntryCommand struct { //nolint:recvcheck //using for validation
	actor     role.Role
	entryID   kernel.UUID
	entryDate time.Time
	entryType entry.EntryType
	bags      int
	packaging entry.Packaging
	variety   string

	guard guard.ConstructorGuard
}

// NewCreateEntryCommand creates a command to register a new sample entry.
func NewCreateEntryCommand(
	actor role.Role,
	entryID kernel.UUID,
	entryDate time.Time,
	entryType entry.EntryType,
	bags int,
	packaging entry.Packaging,
	variety string,
) (CreateEntryCommand, error) {
	cmd := CreateEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setEntryDate(entryDate),
		cmd.setEntryType(entryType),
		cmd.setBags(bags),
		cmd.setPackaging(packaging),
		cmd.setVariety(variety),
	); err != nil {
		return CreateEntryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEntryCommand) Validate() error {
	return c.guard.Validate(ErrCreateEntryCommandIsNotConstructed)
}

func (c CreateEntryCommand) Actor() role.Role           { return c.actor }
func (c CreateEntryCommand) EntryID() kernel.UUID       { return c.entryID }
func (c CreateEntryCommand) EntryDate() time.Time       { return c.entryDate }
func (c CreateEntryCommand) EntryType() entry.EntryType { return c.entryType }
func (c CreateEntryCommand) Bags() int                  { return c.bags }
func (c CreateEntryCommand) Packaging() entry.Packaging { return c.packaging }
func (c CreateEntryCommand) Variety() string            { return c.variety }

func (c *CreateEntryCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *CreateEntryCommand) setEntryDate(entryDate time.Time) error {
	if entryDate.IsZero() {
		return errs.NewValueIsRequiredError("entryDate")
	}
	c.entryDate = entryDate
	return nil
}

func (c *CreateEntryCommand) setEntryType(entryType entry.EntryType) error {
	if err := entryType.Validate(); err != nil {
		return err
	}
	c.entryType = entryType
	return nil
}

func (c *CreateEntryCommand) setBags(bags int) error {
	if bags <= 0 {
		return errs.NewValueIsInvalidError("bags")
	}
	c.bags = bags
	return nil
}

func (c *CreateEntryCommand) setPackaging(packaging entry.Packaging) error {
	if err := packaging.Validate(); err != nil {
		return err
	}
	c.packaging = packaging
	return nil
}

func (c *CreateEntryCommand) setVariety(variety string) error {
	if variety == "" {
		return errs.NewValueIsRequiredError("variety")
	}
	c.variety = variety
	return nil
}
