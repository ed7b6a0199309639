package commands

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/guard"
)

var ErrApproveReviewCommandIsNotConstructed = errors.New(
	"ApproveReviewCommand must be created via NewApproveReviewCommand constructor",
)

// ApproveReviewCommand represents the terminal approval of a fully settled
// entry.
type ApproveReviewCommand struct { //nolint:recvcheck //using for validation
	actor   role.Role
	entryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveReviewCommand creates a command to approve an entry in review.
func NewApproveReviewCommand(actor role.Role, entryID kernel.UUID) (ApproveReviewCommand, error) {
	cmd := ApproveReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
	); err != nil {
		return ApproveReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveReviewCommand) Validate() error {
	return c.guard.Validate(ErrApproveReviewCommandIsNotConstructed)
}

func (c ApproveReviewCommand) Actor() role.Role     { return c.actor }
func (c ApproveReviewCommand) EntryID() kernel.UUID { return c.entryID }

func (c *ApproveReviewCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ApproveReviewCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}
