package pricing

import (
	"errors"
	"fmt"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOfferIsNotConstructed is returned when an Offer was not created through
// NewOffer or RestoreOffer.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

// FieldSpec is the admin's instruction for one delegated field at offer time:
// either a fixed value (Enabled) or a delegation to the manager role.
type FieldSpec struct {
	Enabled bool
	Value   *decimal.Decimal
}

// Delegation carries the admin's instruction for all five fee fields.
type Delegation struct {
	Sute      FieldSpec
	Moisture  FieldSpec
	Hamali    FieldSpec
	Brokerage FieldSpec
	LF        FieldSpec
}

func (d Delegation) spec(name FieldName) FieldSpec {
	switch name {
	case FieldSute:
		return d.Sute
	case FieldMoisture:
		return d.Moisture
	case FieldHamali:
		return d.Hamali
	case FieldBrokerage:
		return d.Brokerage
	case FieldLF:
		return d.LF
	}
	return FieldSpec{}
}

// Offer is the provisional pricing an admin records on a sample entry.
//
// The five fee fields follow the delegation contract: an admin-owned field is
// final, a manager-owned field must be filled through FillMissing before the
// entry may leave the pricing stage. The custom divisor is only meaningful
// for MDLoose base rates and the EGB value only for the loose family; both
// are rejected elsewhere rather than silently ignored.
type Offer struct {
	id            kernel.UUID
	offerRate     decimal.Decimal
	baseRateType  BaseRateType
	baseRateUnit  RateUnit
	baseRateValue decimal.Decimal
	customDivisor *decimal.Decimal
	egbValue      *decimal.Decimal

	fields map[FieldName]DelegatedField

	guard kernel.ConstructorGuard
}

// NewOffer creates a validated Offer from the admin's input.
func NewOffer(
	id kernel.UUID,
	offerRate decimal.Decimal,
	baseRateType BaseRateType,
	baseRateUnit RateUnit,
	baseRateValue decimal.Decimal,
	customDivisor *decimal.Decimal,
	egbValue *decimal.Decimal,
	delegation Delegation,
) (*Offer, error) {
	o := &Offer{
		fields: make(map[FieldName]DelegatedField, len(FieldNames())),
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOfferRate(offerRate),
		o.setBaseRate(baseRateType, baseRateUnit, baseRateValue),
		o.setCustomDivisor(customDivisor),
		o.setEgbValue(egbValue),
		o.setDelegation(delegation),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer reconstructs an Offer from persistence, including partially
// filled delegated fields.
func RestoreOffer(
	id kernel.UUID,
	offerRate decimal.Decimal,
	baseRateType BaseRateType,
	baseRateUnit RateUnit,
	baseRateValue decimal.Decimal,
	customDivisor *decimal.Decimal,
	egbValue *decimal.Decimal,
	fields map[FieldName]DelegatedField,
) (*Offer, error) {
	o := &Offer{
		fields: make(map[FieldName]DelegatedField, len(FieldNames())),
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOfferRate(offerRate),
		o.setBaseRate(baseRateType, baseRateUnit, baseRateValue),
		o.setCustomDivisor(customDivisor),
		o.setEgbValue(egbValue),
	); err != nil {
		return nil, err
	}

	for _, name := range FieldNames() {
		f, ok := fields[name]
		if !ok || f.Owner() == OwnerUnknown {
			return nil, errs.NewValueIsRequiredError(string(name))
		}
		o.fields[name] = f
	}

	return o, nil
}

// Validate ensures the offer was properly constructed.
func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

func (o *Offer) ID() kernel.UUID                { return o.id }
func (o *Offer) OfferRate() decimal.Decimal     { return o.offerRate }
func (o *Offer) BaseRateType() BaseRateType     { return o.baseRateType }
func (o *Offer) BaseRateUnit() RateUnit         { return o.baseRateUnit }
func (o *Offer) BaseRateValue() decimal.Decimal { return o.baseRateValue }

// CustomDivisor returns the divisor for MDLoose offers, nil otherwise.
func (o *Offer) CustomDivisor() *decimal.Decimal {
	if o.customDivisor == nil {
		return nil
	}
	v := *o.customDivisor
	return &v
}

// EgbValue returns the per-bag EGB charge for loose offers, nil otherwise.
func (o *Offer) EgbValue() *decimal.Decimal {
	if o.egbValue == nil {
		return nil
	}
	v := *o.egbValue
	return &v
}

// Field returns one of the five delegated fee fields.
func (o *Offer) Field(name FieldName) DelegatedField {
	return o.fields[name]
}

// FillMissing writes manager values into delegated fields. Every named field
// must be manager-owned; touching an admin-owned field rejects the whole call
// even when the value would not change.
func (o *Offer) FillMissing(values map[FieldName]decimal.Decimal) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if len(values) == 0 {
		return errs.NewValueIsRequiredError("values")
	}

	for name := range values {
		f, ok := o.fields[name]
		if !ok {
			return errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not a delegated field", name))
		}
		if f.Owner() != OwnedByManager {
			return errs.NewFieldOwnershipViolationError(string(name), f.Owner().String())
		}
	}

	for name, value := range values {
		if value.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(string(name), fmt.Errorf("%s is negative", value))
		}
		o.fields[name] = o.fields[name].fill(value)
	}

	return nil
}

// IsComplete reports whether every fee field carries a value, i.e. the entry
// may leave the pricing stage. Completeness is per-field: an admin-owned
// field is complete by construction, a manager-owned field once filled.
func (o *Offer) IsComplete() bool {
	return len(o.MissingFields()) == 0
}

// MissingFields lists the manager-owned fields still awaiting a value,
// in the stable field order.
func (o *Offer) MissingFields() []FieldName {
	var missing []FieldName
	for _, name := range FieldNames() {
		if !o.fields[name].IsFilled() {
			missing = append(missing, name)
		}
	}
	return missing
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setOfferRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("offerRate", fmt.Errorf("%s is not greater than 0", rate))
	}
	o.offerRate = rate
	return nil
}

func (o *Offer) setBaseRate(rateType BaseRateType, rateUnit RateUnit, value decimal.Decimal) error {
	if err := rateType.Validate(); err != nil {
		return err
	}
	if err := rateUnit.Validate(); err != nil {
		return err
	}
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("offerBaseRateValue", fmt.Errorf("%s is not greater than 0", value))
	}
	o.baseRateType = rateType
	o.baseRateUnit = rateUnit
	o.baseRateValue = value
	return nil
}

func (o *Offer) setCustomDivisor(divisor *decimal.Decimal) error {
	if o.baseRateType == MDLoose {
		if divisor == nil {
			return errs.NewValueIsRequiredError("customDivisor")
		}
		if !divisor.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause("customDivisor", fmt.Errorf("%s is not greater than 0", divisor))
		}
		v := *divisor
		o.customDivisor = &v
		return nil
	}

	if divisor != nil {
		return errs.NewValueIsInvalidErrorWithCause("customDivisor",
			fmt.Errorf("only meaningful for %s offers", MDLoose))
	}
	return nil
}

func (o *Offer) setEgbValue(egb *decimal.Decimal) error {
	if egb == nil {
		return nil
	}
	if !o.baseRateType.IsLoose() {
		return errs.NewValueIsInvalidErrorWithCause("egbValue",
			fmt.Errorf("only meaningful for loose offers, got %s", o.baseRateType))
	}
	if egb.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("egbValue", fmt.Errorf("%s is negative", egb))
	}
	v := *egb
	o.egbValue = &v
	return nil
}

func (o *Offer) setDelegation(delegation Delegation) error {
	for _, name := range FieldNames() {
		spec := delegation.spec(name)

		if spec.Enabled {
			if spec.Value == nil {
				return errs.NewValueIsRequiredErrorWithCause(string(name),
					errors.New("an enabled field must carry its final value"))
			}
			if spec.Value.IsNegative() {
				return errs.NewValueIsInvalidErrorWithCause(string(name), fmt.Errorf("%s is negative", spec.Value))
			}
			o.fields[name] = AdminField(*spec.Value)
			continue
		}

		if spec.Value != nil {
			return errs.NewValueIsInvalidErrorWithCause(string(name),
				errors.New("a delegated field must not carry an admin value"))
		}
		o.fields[name] = ManagerField()
	}
	return nil
}
