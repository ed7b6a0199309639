package commands

import (
	"errors"

	"mandi/internal/core/domain/model/grading"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/guard"
)

var ErrAttachCookingCommandIsNotConstructed = errors.New(
	"AttachCookingCommand must be created via NewAttachCookingCommand constructor",
)

// AttachCookingCommand represents a request to record the cook-test report on
// an entry whose lot decision was pass-with-cooking.
type AttachCookingCommand struct { //nolint:recvcheck //using for validation
	actor     role.Role
	entryID   kernel.UUID
	cookingID kernel.UUID
	status    grading.CookingStatus
	remarks   string

	guard guard.ConstructorGuard
}

// NewAttachCookingCommand creates a command to record a cook report.
func NewAttachCookingCommand(
	actor role.Role,
	entryID, cookingID kernel.UUID,
	status grading.CookingStatus,
	remarks string,
) (AttachCookingCommand, error) {
	cmd := AttachCookingCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setCookingID(cookingID),
		cmd.setStatus(status),
	); err != nil {
		return AttachCookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachCookingCommand) Validate() error {
	return c.guard.Validate(ErrAttachCookingCommandIsNotConstructed)
}

func (c AttachCookingCommand) Actor() role.Role               { return c.actor }
func (c AttachCookingCommand) EntryID() kernel.UUID           { return c.entryID }
func (c AttachCookingCommand) CookingID() kernel.UUID         { return c.cookingID }
func (c AttachCookingCommand) Status() grading.CookingStatus  { return c.status }
func (c AttachCookingCommand) Remarks() string                { return c.remarks }

func (c *AttachCookingCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AttachCookingCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *AttachCookingCommand) setCookingID(cookingID kernel.UUID) error {
	if err := cookingID.Validate(); err != nil {
		return err
	}
	c.cookingID = cookingID
	return nil
}

func (c *AttachCookingCommand) setStatus(status grading.CookingStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
