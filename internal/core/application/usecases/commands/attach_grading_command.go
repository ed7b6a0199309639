package commands

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/errs"
	"mandi/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAttachGradingCommandIsNotConstructed = errors.New(
	"AttachGradingCommand must be created via NewAttachGradingCommand constructor",
)

// AttachGradingCommand represents a request to record the quality parameters
// of a sample entry and move it to the graded stage.
type AttachGradingCommand struct { //nolint:recvcheck //using for validation
	actor     role.Role
	entryID   kernel.UUID
	gradingID kernel.UUID

	moisture decimal.Decimal
	cutOne   decimal.Decimal
	bendOne  decimal.Decimal
	cutTwo   decimal.Decimal
	bendTwo  decimal.Decimal

	mixPercent    *decimal.Decimal
	defectPercent *decimal.Decimal

	gradedBy string

	guard guard.ConstructorGuard
}

// NewAttachGradingCommand creates a command to record grading results.
// Range checks on the measured values happen in the grading aggregate.
func NewAttachGradingCommand(
	actor role.Role,
	entryID, gradingID kernel.UUID,
	moisture decimal.Decimal,
	cutOne, bendOne, cutTwo, bendTwo decimal.Decimal,
	mixPercent, defectPercent *decimal.Decimal,
	gradedBy string,
) (AttachGradingCommand, error) {
	cmd := AttachGradingCommand{
		moisture:      moisture,
		cutOne:        cutOne,
		bendOne:       bendOne,
		cutTwo:        cutTwo,
		bendTwo:       bendTwo,
		mixPercent:    mixPercent,
		defectPercent: defectPercent,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setGradingID(gradingID),
		cmd.setGradedBy(gradedBy),
	); err != nil {
		return AttachGradingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachGradingCommand) Validate() error {
	return c.guard.Validate(ErrAttachGradingCommandIsNotConstructed)
}

func (c AttachGradingCommand) Actor() role.Role               { return c.actor }
func (c AttachGradingCommand) EntryID() kernel.UUID           { return c.entryID }
func (c AttachGradingCommand) GradingID() kernel.UUID         { return c.gradingID }
func (c AttachGradingCommand) Moisture() decimal.Decimal      { return c.moisture }
func (c AttachGradingCommand) CutOne() decimal.Decimal        { return c.cutOne }
func (c AttachGradingCommand) BendOne() decimal.Decimal       { return c.bendOne }
func (c AttachGradingCommand) CutTwo() decimal.Decimal        { return c.cutTwo }
func (c AttachGradingCommand) BendTwo() decimal.Decimal       { return c.bendTwo }
func (c AttachGradingCommand) MixPercent() *decimal.Decimal   { return c.mixPercent }
func (c AttachGradingCommand) DefectPercent() *decimal.Decimal { return c.defectPercent }
func (c AttachGradingCommand) GradedBy() string               { return c.gradedBy }

func (c *AttachGradingCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AttachGradingCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *AttachGradingCommand) setGradingID(gradingID kernel.UUID) error {
	if err := gradingID.Validate(); err != nil {
		return err
	}
	c.gradingID = gradingID
	return nil
}

func (c *AttachGradingCommand) setGradedBy(gradedBy string) error {
	if gradedBy == "" {
		return errs.NewValueIsRequiredError("gradedBy")
	}
	c.gradedBy = gradedBy
	return nil
}
