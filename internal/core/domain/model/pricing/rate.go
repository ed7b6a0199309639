// Package pricing models the provisional offer an admin places on a sample
// entry, including the per-field delegation contract: each of the five fee
// fields is owned either by the admin (value fixed at offer time) or by a
// manager (value supplied later through FillMissing). Who may write a field
// is part of the field's type, not a runtime flag.
package pricing

import (
	"fmt"

	"mandi/internal/pkg/errs"
)

// RateUnit says whether a rate applies per bag or per quintal.
type RateUnit int

const (
	RateUnitUnknown RateUnit = iota
	PerBag
	PerQuintal
)

func rateUnitStrings() map[RateUnit]string {
	return map[RateUnit]string{
		RateUnitUnknown: "Unknown",
		PerBag:          "PerBag",
		PerQuintal:      "PerQuintal",
	}
}

// String implements fmt.Stringer.
func (u RateUnit) String() string {
	if s, ok := rateUnitStrings()[u]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects RateUnitUnknown and out-of-range values.
func (u RateUnit) Validate() error {
	if u != PerBag && u != PerQuintal {
		return errs.NewValueIsInvalidErrorWithCause("rateUnit", fmt.Errorf("%d is not a valid rate unit", u))
	}
	return nil
}

// BaseRateType is the quotation family of the base rate. The loose variants
// allow an EGB charge; MDLoose additionally carries a custom divisor used in
// the settlement arithmetic.
type BaseRateType int

const (
	BaseRateTypeUnknown BaseRateType = iota
	PDLoose
	PDWB
	MDLoose
	MDWB
)

func baseRateTypeStrings() map[BaseRateType]string {
	return map[BaseRateType]string{
		BaseRateTypeUnknown: "Unknown",
		PDLoose:             "PDLoose",
		PDWB:                "PDWB",
		MDLoose:             "MDLoose",
		MDWB:                "MDWB",
	}
}

// String implements fmt.Stringer.
func (t BaseRateType) String() string {
	if s, ok := baseRateTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects BaseRateTypeUnknown and out-of-range values.
func (t BaseRateType) Validate() error {
	switch t {
	case PDLoose, PDWB, MDLoose, MDWB:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("baseRateType", fmt.Errorf("%d is not a valid base rate type", t))
	}
}

// IsLoose reports whether the type belongs to the loose family, which makes
// the EGB charge applicable.
func (t BaseRateType) IsLoose() bool {
	return t == PDLoose || t == MDLoose
}
