// Package lot models the physical side of an entry: the allotment of the lot
// to a supervisor, the fan-out of delivery trips under it, and the weight
// record each trip produces at the weighbridge.
package lot

import (
	"fmt"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/pkg/errs"
)

// StorageKind says where the weighed produce goes.
type StorageKind int

const (
	StorageKindUnknown StorageKind = iota

	// StorageWarehouse books the produce into the general warehouse.
	StorageWarehouse

	// StorageDirectKunchinittu sends the produce straight to a kunchinittu
	// batch; the batch's declared variety must match the entry's.
	StorageDirectKunchinittu

	// StorageDirectOutturn sends the produce straight to an outturn; the
	// outturn's declared variety must match the entry's.
	StorageDirectOutturn
)

func storageKindStrings() map[StorageKind]string {
	return map[StorageKind]string{
		StorageKindUnknown:       "Unknown",
		StorageWarehouse:         "Warehouse",
		StorageDirectKunchinittu: "DirectKunchinittu",
		StorageDirectOutturn:     "DirectOutturn",
	}
}

// String implements fmt.Stringer.
func (k StorageKind) String() string {
	if s, ok := storageKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects StorageKindUnknown and out-of-range values.
func (k StorageKind) Validate() error {
	switch k {
	case StorageWarehouse, StorageDirectKunchinittu, StorageDirectOutturn:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("storageKind", fmt.Errorf("%d is not a valid storage kind", k))
	}
}

// IsDirect reports whether the target bypasses the warehouse.
func (k StorageKind) IsDirect() bool {
	return k == StorageDirectKunchinittu || k == StorageDirectOutturn
}

// StorageTarget is the destination of one weight record. Direct targets carry
// the destination's identifier and its declared variety.
type StorageTarget struct {
	kind     StorageKind
	targetID *kernel.UUID
	variety  string
}

// WarehouseTarget creates the plain warehouse destination.
func WarehouseTarget() StorageTarget {
	return StorageTarget{kind: StorageWarehouse}
}

// DirectTarget creates a direct destination of the given kind.
// The declared variety is validated against the entry when the weight record
// is attached, not here.
func DirectTarget(kind StorageKind, targetID kernel.UUID, variety string) (StorageTarget, error) {
	if !kind.IsDirect() {
		return StorageTarget{}, errs.NewValueIsInvalidErrorWithCause("storageKind",
			fmt.Errorf("%s is not a direct storage kind", kind))
	}
	if err := targetID.Validate(); err != nil {
		return StorageTarget{}, err
	}
	if variety == "" {
		return StorageTarget{}, errs.NewValueIsRequiredError("variety")
	}
	id := targetID
	return StorageTarget{kind: kind, targetID: &id, variety: variety}, nil
}

// RestoreStorageTarget reconstructs a target from persistence.
func RestoreStorageTarget(kind StorageKind, targetID *kernel.UUID, variety string) (StorageTarget, error) {
	if kind == StorageWarehouse {
		return WarehouseTarget(), nil
	}
	if targetID == nil {
		return StorageTarget{}, errs.NewValueIsRequiredError("targetID")
	}
	return DirectTarget(kind, *targetID, variety)
}

// Kind returns where the produce goes.
func (t StorageTarget) Kind() StorageKind {
	return t.kind
}

// TargetID returns the direct destination's identifier, nil for the warehouse.
func (t StorageTarget) TargetID() *kernel.UUID {
	if t.targetID == nil {
		return nil
	}
	id := *t.targetID
	return &id
}

// Variety returns the variety declared on a direct target, empty for the warehouse.
func (t StorageTarget) Variety() string {
	return t.variety
}

// Validate rejects targets built by direct struct initialization.
func (t StorageTarget) Validate() error {
	return t.kind.Validate()
}
