package entry

import (
	"fmt"

	"mandi/internal/pkg/errs"
)

// EntryType says how the sample arrived at the yard.
type EntryType int

const (
	EntryTypeUnknown EntryType = iota

	// NewSample: a fresh sample brought in for evaluation.
	NewSample

	// ReadyLorry: a loaded lorry already waiting, sampled on arrival.
	ReadyLorry

	// LocationSample: a sample drawn at the seller's location.
	LocationSample
)

func entryTypeStrings() map[EntryType]string {
	return map[EntryType]string{
		EntryTypeUnknown: "Unknown",
		NewSample:        "NewSample",
		ReadyLorry:       "ReadyLorry",
		LocationSample:   "LocationSample",
	}
}

// String implements fmt.Stringer.
func (t EntryType) String() string {
	if s, ok := entryTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects EntryTypeUnknown and out-of-range values.
func (t EntryType) Validate() error {
	switch t {
	case NewSample, ReadyLorry, LocationSample:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("entryType", fmt.Errorf("%d is not a valid entry type", t))
	}
}

// Packaging is the bag size the lot is packed in.
type Packaging int

const (
	PackagingUnknown Packaging = iota
	Packaging75kg
	Packaging40kg
)

func packagingStrings() map[Packaging]string {
	return map[Packaging]string{
		PackagingUnknown: "Unknown",
		Packaging75kg:    "75kg",
		Packaging40kg:    "40kg",
	}
}

// String implements fmt.Stringer.
func (p Packaging) String() string {
	if s, ok := packagingStrings()[p]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects PackagingUnknown and out-of-range values.
func (p Packaging) Validate() error {
	switch p {
	case Packaging75kg, Packaging40kg:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("packaging", fmt.Errorf("%d is not a valid packaging", p))
	}
}

// LotDecision is the owner's verdict after grading.
type LotDecision int

const (
	// DecisionPending: no decision recorded yet.
	DecisionPending LotDecision = iota

	// PassNoCook accepts the lot without a cook test.
	PassNoCook

	// PassWithCook accepts the lot subject to a cook test.
	PassWithCook

	// Rejected fails the lot outright.
	Rejected
)

func lotDecisionStrings() map[LotDecision]string {
	return map[LotDecision]string{
		DecisionPending: "Pending",
		PassNoCook:      "PassNoCook",
		PassWithCook:    "PassWithCook",
		Rejected:        "Rejected",
	}
}

// String implements fmt.Stringer.
func (d LotDecision) String() string {
	if s, ok := lotDecisionStrings()[d]; ok {
		return s
	}
	return "Pending"
}

// Validate rejects DecisionPending and out-of-range values. A pending
// decision is a valid stored state but never a valid input to Decide.
func (d LotDecision) Validate() error {
	switch d {
	case PassNoCook, PassWithCook, Rejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("lotDecision", fmt.Errorf("%d is not a valid lot decision", d))
	}
}
