package commands

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/pricing"
	"mandi/internal/core/domain/model/role"
	"mandi/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSetOfferCommandIsNotConstructed = errors.New(
	"SetOfferCommand must be created via NewSetOfferCommand constructor",
)

// SetOfferCommand represents the admin's provisional pricing for an entry,
// including the delegation instruction for the five fee fields.
type SetOfferCommand struct { //nolint:recvcheck //using for validation
	actor   role.Role
	entryID kernel.UUID
	offerID kernel.UUID

	offerRate     decimal.Decimal
	baseRateType  pricing.BaseRateType
	baseRateUnit  pricing.RateUnit
	baseRateValue decimal.Decimal
	customDivisor *decimal.Decimal
	egbValue      *decimal.Decimal
	delegation    pricing.Delegation

	guard guard.ConstructorGuard
}

// NewSetOfferCommand creates a command to record an offer. The base rate,
// divisor and EGB consistency rules are enforced by the offer aggregate.
func NewSetOfferCommand(
	actor role.Role,
	entryID, offerID kernel.UUID,
	offerRate decimal.Decimal,
	baseRateType pricing.BaseRateType,
	baseRateUnit pricing.RateUnit,
	baseRateValue decimal.Decimal,
	customDivisor *decimal.Decimal,
	egbValue *decimal.Decimal,
	delegation pricing.Delegation,
) (SetOfferCommand, error) {
	cmd := SetOfferCommand{
		offerRate:     offerRate,
		baseRateValue: baseRateValue,
		customDivisor: customDivisor,
		egbValue:      egbValue,
		delegation:    delegation,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setEntryID(entryID),
		cmd.setOfferID(offerID),
		cmd.setBaseRate(baseRateType, baseRateUnit),
	); err != nil {
		return SetOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOfferCommand) Validate() error {
	return c.guard.Validate(ErrSetOfferCommandIsNotConstructed)
}

func (c SetOfferCommand) Actor() role.Role                   { return c.actor }
func (c SetOfferCommand) EntryID() kernel.UUID               { return c.entryID }
func (c SetOfferCommand) OfferID() kernel.UUID               { return c.offerID }
func (c SetOfferCommand) OfferRate() decimal.Decimal         { return c.offerRate }
func (c SetOfferCommand) BaseRateType() pricing.BaseRateType { return c.baseRateType }
func (c SetOfferCommand) BaseRateUnit() pricing.RateUnit     { return c.baseRateUnit }
func (c SetOfferCommand) BaseRateValue() decimal.Decimal     { return c.baseRateValue }
func (c SetOfferCommand) CustomDivisor() *decimal.Decimal    { return c.customDivisor }
func (c SetOfferCommand) EgbValue() *decimal.Decimal         { return c.egbValue }
func (c SetOfferCommand) Delegation() pricing.Delegation     { return c.delegation }

func (c *SetOfferCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *SetOfferCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}
	c.entryID = entryID
	return nil
}

func (c *SetOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}
	c.offerID = offerID
	return nil
}

func (c *SetOfferCommand) setBaseRate(rateType pricing.BaseRateType, rateUnit pricing.RateUnit) error {
	if err := rateType.Validate(); err != nil {
		return err
	}
	if err := rateUnit.Validate(); err != nil {
		return err
	}
	c.baseRateType = rateType
	c.baseRateUnit = rateUnit
	return nil
}
