package lot

import (
	"errors"
	"fmt"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/settlement"
	"mandi/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip was not created through
	// NewTrip.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")

	// ErrWeightAlreadyRecorded is returned when a second weight record is
	// attached to the same trip.
	ErrWeightAlreadyRecorded = errors.New("trip already has a weight record")
)

// Stage is how far one delivery trip has progressed through its own pipeline.
// The entry's overall progress is the minimum stage across its trips.
type Stage int

const (
	StageUnknown Stage = iota
	StageDelivering
	StageWeighed
	StageOwnerSettled
	StageManagerSettled
)

func stageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:        "Unknown",
		StageDelivering:     "Delivering",
		StageWeighed:        "Weighed",
		StageOwnerSettled:   "OwnerSettled",
		StageManagerSettled: "ManagerSettled",
	}
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	if v, ok := stageStrings()[s]; ok {
		return v
	}
	return "Unknown"
}

// Trip is one lorry load dispatched under an allotment. The supervisor
// records it in the field; the weighbridge and the settlement phases fill it
// in afterwards.
type Trip struct {
	id          kernel.UUID
	lorryNumber string
	bags        int
	cut         decimal.Decimal
	bend        decimal.Decimal
	remarks     string
	weight      *WeightRecord

	guard kernel.ConstructorGuard
}

// NewTrip creates a validated Trip. Cut and bend are the supervisor's
// field-side quality readings for this load.
func NewTrip(
	id kernel.UUID,
	lorryNumber string,
	bags int,
	cut, bend decimal.Decimal,
	remarks string,
) (*Trip, error) {
	t := &Trip{
		remarks: remarks,
		guard:   kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setLorryNumber(lorryNumber),
		t.setBags(bags),
		t.setReadings(cut, bend),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip reconstructs a Trip from persistence.
func RestoreTrip(
	id kernel.UUID,
	lorryNumber string,
	bags int,
	cut, bend decimal.Decimal,
	remarks string,
	weight *WeightRecord,
) (*Trip, error) {
	t, err := NewTrip(id, lorryNumber, bags, cut, bend, remarks)
	if err != nil {
		return nil, err
	}
	if weight != nil {
		if err := weight.Validate(); err != nil {
			return nil, err
		}
		t.weight = weight
	}
	return t, nil
}

// Validate ensures the trip was properly constructed.
func (t *Trip) Validate() error {
	if t == nil {
		return ErrTripIsNotConstructed
	}
	return t.guard.Validate(ErrTripIsNotConstructed)
}

func (t *Trip) ID() kernel.UUID      { return t.id }
func (t *Trip) LorryNumber() string  { return t.lorryNumber }
func (t *Trip) Bags() int            { return t.bags }
func (t *Trip) Cut() decimal.Decimal { return t.cut }
func (t *Trip) Bend() decimal.Decimal { return t.bend }
func (t *Trip) Remarks() string      { return t.remarks }

// Weight returns the weighbridge record, nil while the trip is in transit.
func (t *Trip) Weight() *WeightRecord {
	return t.weight
}

// RecordWeight attaches the weighbridge outcome. One record per trip.
func (t *Trip) RecordWeight(w *WeightRecord) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.weight != nil {
		return ErrWeightAlreadyRecorded
	}
	if err := w.Validate(); err != nil {
		return err
	}
	t.weight = w
	return nil
}

// Stage derives how far this trip has progressed from what has been recorded
// on it so far.
func (t *Trip) Stage() Stage {
	if t.weight == nil {
		return StageDelivering
	}
	stl := t.weight.Settlement()
	if stl == nil {
		return StageWeighed
	}
	if stl.Phase() == settlement.PhaseManagerSettled {
		return StageManagerSettled
	}
	return StageOwnerSettled
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setLorryNumber(lorryNumber string) error {
	if lorryNumber == "" {
		return errs.NewValueIsRequiredError("lorryNumber")
	}
	t.lorryNumber = lorryNumber
	return nil
}

func (t *Trip) setBags(bags int) error {
	if bags <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("bags", fmt.Errorf("%d is not greater than 0", bags))
	}
	t.bags = bags
	return nil
}

func (t *Trip) setReadings(cut, bend decimal.Decimal) error {
	if cut.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cut", fmt.Errorf("%s is negative", cut))
	}
	if bend.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("bend", fmt.Errorf("%s is negative", bend))
	}
	t.cut = cut
	t.bend = bend
	return nil
}
