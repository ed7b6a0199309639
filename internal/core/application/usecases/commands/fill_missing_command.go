package commands

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/pricing"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/errs"
	"mandi/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrFillMissingCommandIsNotConstructed = errors.New(
	"FillMissingCommand must be created via NewFillMissingCommand constructor",
)

// FillMissingCommand represents the manager's values for the delegated fee
// fields of an entry's offer.
type FillMissingCommand struct { //nolint:recvcheck //using for validation
	actor   role.Role
	entryID kernel.UUID
	values  map[pricing.FieldName]decimal.Decimal

	guard guard.ConstructorGuard
}

// NewFillMissingCommand creates a command to fill delegated fields. Ownership
// of the named fields is checked by the offer aggregate.
func NewFillMissingCommand(
	actor role.Role,
	entryID kernel.UUID,
	values map[pricing.FieldName]decimal.Decimal,
) (FillMissingCommand, error) {
	cmd := FillMissingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setValues(values),
	); err != nil {
		return FillMissingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FillMissingCommand) Validate() error {
	return c.guard.Validate(ErrFillMissingCommandIsNotConstructed)
}

func (c FillMissingCommand) Actor() role.Role     { return c.actor }
func (c FillMissingCommand) EntryID() kernel.UUID { return c.entryID }

// Values returns a copy of the field values to fill.
func (c FillMissingCommand) Values() map[pricing.FieldName]decimal.Decimal {
	values := make(map[pricing.FieldName]decimal.Decimal, len(c.values))
	for name, value := range c.values {
		values[name] = value
	}
	return values
}

func (c *FillMissingCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *FillMissingCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *FillMissingCommand) setValues(values map[pricing.FieldName]decimal.Decimal) error {
	if len(values) == 0 {
		return errs.NewValueIsRequiredError("values")
	}
	c.values = make(map[pricing.FieldName]decimal.Decimal, len(values))
	for name, value := range values {
		c.values[name] = value
	}
	return nil
}
