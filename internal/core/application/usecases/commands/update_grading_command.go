package commands

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/errs"
	"mandi/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateGradingCommandIsNotConstructed = errors.New(
	"UpdateGradingCommand must be created via NewUpdateGradingCommand constructor",
)

// UpdateGradingCommand represents a correction of previously recorded quality
// parameters. The grading result keeps its identity.
type UpdateGradingCommand struct { //nolint:recvcheck //using for validation
	actor   role.Role
	entryID kernel.UUID

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

// NewUpdateGradingCommand creates a command to correct grading results.
func NewUpdateGradingCommand(
	actor role.Role,
	entryID kernel.UUID,
	moisture decimal.Decimal,
	cutOne, bendOne, cutTwo, bendTwo decimal.Decimal,
	mixPercent, defectPercent *decimal.Decimal,
	gradedBy string,
) (UpdateGradingCommand, error) {
	cmd := UpdateGradingCommand{
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
		cmd.setGradedBy(gradedBy),
	); err != nil {
		return UpdateGradingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateGradingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateGradingCommandIsNotConstructed)
}

func (c UpdateGradingCommand) Actor() role.Role                { return c.actor }
func (c UpdateGradingCommand) EntryID() kernel.UUID            { return c.entryID }
func (c UpdateGradingCommand) Moisture() decimal.Decimal       { return c.moisture }
func (c UpdateGradingCommand) CutOne() decimal.Decimal         { return c.cutOne }
func (c UpdateGradingCommand) BendOne() decimal.Decimal        { return c.bendOne }
func (c UpdateGradingCommand) CutTwo() decimal.Decimal         { return c.cutTwo }
func (c UpdateGradingCommand) BendTwo() decimal.Decimal        { return c.bendTwo }
func (c UpdateGradingCommand) MixPercent() *decimal.Decimal    { return c.mixPercent }
func (c UpdateGradingCommand) DefectPercent() *decimal.Decimal { return c.defectPercent }
func (c UpdateGradingCommand) GradedBy() string                { return c.gradedBy }

func (c *UpdateGradingCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateGradingCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *UpdateGradingCommand) setGradedBy(gradedBy string) error {
	if gradedBy == "" {
		return errs.NewValueIsRequiredError("gradedBy")
	}
	c.gradedBy = gradedBy
	return nil
}
