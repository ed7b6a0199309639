package pricing

import (
	"github.com/shopspring/decimal"
)

// FieldOwner says which role is authoritative for a delegated fee field.
type FieldOwner int

const (
	OwnerUnknown FieldOwner = iota

	// OwnedByAdmin means the admin fixed the value at offer time; managers
	// may never overwrite it.
	OwnedByAdmin

	// OwnedByManager means the admin delegated the value; the entry cannot
	// leave the pricing stage until a manager supplies it.
	OwnedByManager
)

func fieldOwnerStrings() map[FieldOwner]string {
	return map[FieldOwner]string{
		OwnerUnknown:   "unknown",
		OwnedByAdmin:   "admin",
		OwnedByManager: "manager",
	}
}

// String implements fmt.Stringer.
func (o FieldOwner) String() string {
	if s, ok := fieldOwnerStrings()[o]; ok {
		return s
	}
	return "unknown"
}

// FieldName identifies one of the five delegated fee fields of an offer.
type FieldName string

const (
	FieldSute      FieldName = "sute"
	FieldMoisture  FieldName = "moisture"
	FieldHamali    FieldName = "hamali"
	FieldBrokerage FieldName = "brokerage"
	FieldLF        FieldName = "lf"
)

// FieldNames lists the five delegated fields in a stable order.
func FieldNames() []FieldName {
	return []FieldName{FieldSute, FieldMoisture, FieldHamali, FieldBrokerage, FieldLF}
}

// DelegatedField is a fee value tagged with the role that owns it.
// An admin-owned field always carries a value; a manager-owned field starts
// empty and is satisfied once FillMissing writes it.
type DelegatedField struct {
	value *decimal.Decimal
	owner FieldOwner
}

// AdminField creates a field fixed by the admin at offer time.
func AdminField(value decimal.Decimal) DelegatedField {
	v := value
	return DelegatedField{value: &v, owner: OwnedByAdmin}
}

// ManagerField creates a field delegated to the manager, initially unfilled.
func ManagerField() DelegatedField {
	return DelegatedField{owner: OwnedByManager}
}

// RestoreDelegatedField reconstructs a field from persistence.
func RestoreDelegatedField(owner FieldOwner, value *decimal.Decimal) DelegatedField {
	if value == nil {
		return DelegatedField{owner: owner}
	}
	v := *value
	return DelegatedField{value: &v, owner: owner}
}

// Owner returns the role authoritative for this field.
func (f DelegatedField) Owner() FieldOwner {
	return f.owner
}

// Value returns the field value, or nil while a manager-owned field is unfilled.
func (f DelegatedField) Value() *decimal.Decimal {
	if f.value == nil {
		return nil
	}
	v := *f.value
	return &v
}

// IsFilled reports whether the field carries a value.
func (f DelegatedField) IsFilled() bool {
	return f.value != nil
}

// fill writes a manager value. The ownership check lives in Offer.FillMissing.
func (f DelegatedField) fill(value decimal.Decimal) DelegatedField {
	v := value
	return DelegatedField{value: &v, owner: f.owner}
}
