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
	// ErrWeightRecordIsNotConstructed is returned when a WeightRecord was not
	// created through NewWeightRecord.
	ErrWeightRecordIsNotConstructed = errors.New("WeightRecord must be created via NewWeightRecord constructor")

	// ErrSettlementAlreadyAttached is returned when an owner settlement is
	// recorded twice for the same weight record.
	ErrSettlementAlreadyAttached = errors.New("weight record already has a settlement")
)

// WeightRecord is the weighbridge outcome of one delivery trip.
// Net weight is derived, never supplied: net = gross − tare, in kilograms.
type WeightRecord struct {
	id          kernel.UUID
	grossWeight decimal.Decimal
	tareWeight  decimal.Decimal
	target      StorageTarget
	settlement  *settlement.Settlement

	guard kernel.ConstructorGuard
}

// NewWeightRecord creates a validated WeightRecord.
func NewWeightRecord(id kernel.UUID, grossWeight, tareWeight decimal.Decimal, target StorageTarget) (*WeightRecord, error) {
	w := &WeightRecord{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setWeights(grossWeight, tareWeight),
		w.setTarget(target),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWeightRecord reconstructs a WeightRecord from persistence.
func RestoreWeightRecord(
	id kernel.UUID,
	grossWeight, tareWeight decimal.Decimal,
	target StorageTarget,
	stl *settlement.Settlement,
) (*WeightRecord, error) {
	w, err := NewWeightRecord(id, grossWeight, tareWeight, target)
	if err != nil {
		return nil, err
	}
	if stl != nil {
		if err := stl.Validate(); err != nil {
			return nil, err
		}
		w.settlement = stl
	}
	return w, nil
}

// Validate ensures the record was properly constructed.
func (w *WeightRecord) Validate() error {
	if w == nil {
		return ErrWeightRecordIsNotConstructed
	}
	return w.guard.Validate(ErrWeightRecordIsNotConstructed)
}

func (w *WeightRecord) ID() kernel.UUID              { return w.id }
func (w *WeightRecord) GrossWeight() decimal.Decimal { return w.grossWeight }
func (w *WeightRecord) TareWeight() decimal.Decimal  { return w.tareWeight }
func (w *WeightRecord) Target() StorageTarget        { return w.target }

// NetWeight is the derived weight basis: gross − tare, in kilograms.
func (w *WeightRecord) NetWeight() decimal.Decimal {
	return w.grossWeight.Sub(w.tareWeight)
}

// Settlement returns the financial row, nil until the owner phase runs.
func (w *WeightRecord) Settlement() *settlement.Settlement {
	return w.settlement
}

// AttachSettlement stores the owner-phase settlement. One per record.
func (w *WeightRecord) AttachSettlement(stl *settlement.Settlement) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.settlement != nil {
		return ErrSettlementAlreadyAttached
	}
	if err := stl.Validate(); err != nil {
		return err
	}
	w.settlement = stl
	return nil
}

func (w *WeightRecord) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WeightRecord) setWeights(gross, tare decimal.Decimal) error {
	if !gross.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("grossWeight", fmt.Errorf("%s is not greater than 0", gross))
	}
	if tare.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("tareWeight", fmt.Errorf("%s is negative", tare))
	}
	if !gross.GreaterThan(tare) {
		return errs.NewValueIsInvalidErrorWithCause("tareWeight",
			fmt.Errorf("tare %s is not below gross %s", tare, gross))
	}
	w.grossWeight = gross
	w.tareWeight = tare
	return nil
}

func (w *WeightRecord) setTarget(target StorageTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}
	w.target = target
	return nil
}
