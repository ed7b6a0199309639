package http

import (
	"fmt"
	"time"

	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/grading"
	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/pricing"
	"mandi/internal/core/domain/model/settlement"
	"mandi/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateEntryRequest registers a new sample entry at intake. The client
// supplies the entry ID so retries stay idempotent.
type CreateEntryRequest struct {
	EntryID   string    `json:"entryId"   validate:"required,uuid"`
	EntryDate time.Time `json:"entryDate" validate:"required"`
	EntryType string    `json:"entryType" validate:"required"`
	Bags      int       `json:"bags"      validate:"required,gt=0"`
	Packaging string    `json:"packaging" validate:"required"`
	Variety   string    `json:"variety"   validate:"required"`
}

// GradingRequest carries the quality parameters for attach and update.
type GradingRequest struct {
	GradingID     string           `json:"gradingId,omitempty" validate:"omitempty,uuid"`
	Moisture      decimal.Decimal  `json:"moisture"`
	CutOne        decimal.Decimal  `json:"cutOne"`
	BendOne       decimal.Decimal  `json:"bendOne"`
	CutTwo        decimal.Decimal  `json:"cutTwo"`
	BendTwo       decimal.Decimal  `json:"bendTwo"`
	MixPercent    *decimal.Decimal `json:"mixPercent,omitempty"`
	DefectPercent *decimal.Decimal `json:"defectPercent,omitempty"`
	GradedBy      string           `json:"gradedBy" validate:"required"`
}

// DecideRequest records the owner's verdict on a graded lot.
type DecideRequest struct {
	Decision string `json:"decision" validate:"required"`
}

// AttachCookingRequest records the cook report.
type AttachCookingRequest struct {
	CookingID string `json:"cookingId" validate:"required,uuid"`
	Status    string `json:"status"    validate:"required"`
	Remarks   string `json:"remarks,omitempty"`
}

// OfferFieldRequest is the admin's instruction for one delegated fee field:
// either a fixed value or an explicit delegation to the manager role.
type OfferFieldRequest struct {
	Delegated bool             `json:"delegated"`
	Value     *decimal.Decimal `json:"value,omitempty"`
}

// SetOfferRequest records or replaces the offer on a priced entry.
type SetOfferRequest struct {
	OfferID       string                       `json:"offerId"       validate:"required,uuid"`
	OfferRate     decimal.Decimal              `json:"offerRate"`
	BaseRateType  string                       `json:"baseRateType"  validate:"required"`
	BaseRateUnit  string                       `json:"baseRateUnit"  validate:"required"`
	BaseRateValue decimal.Decimal              `json:"baseRateValue"`
	CustomDivisor *decimal.Decimal             `json:"customDivisor,omitempty"`
	EgbValue      *decimal.Decimal             `json:"egbValue,omitempty"`
	Fields        map[string]OfferFieldRequest `json:"fields" validate:"required"`
}

// FillMissingRequest writes manager values into delegated offer fields.
type FillMissingRequest struct {
	Values map[string]decimal.Decimal `json:"values" validate:"required"`
}

// AssignSupervisorRequest hands the lot to a supervisor.
type AssignSupervisorRequest struct {
	AllotmentID  string `json:"allotmentId"  validate:"required,uuid"`
	SupervisorID string `json:"supervisorId" validate:"required,uuid"`
	AllottedBags int    `json:"allottedBags" validate:"required,gt=0"`
}

// RecordTripRequest registers a delivery trip under the open allotment.
type RecordTripRequest struct {
	TripID      string          `json:"tripId" validate:"required,uuid"`
	LorryNumber string          `json:"lorryNumber" validate:"required"`
	Bags        int             `json:"bags" validate:"required,gt=0"`
	Cut         decimal.Decimal `json:"cut"`
	Bend        decimal.Decimal `json:"bend"`
	Remarks     string          `json:"remarks,omitempty"`
}

// RecordWeightRequest attaches the weighbridge outcome to a trip. Direct
// storage targets carry the destination and its declared variety.
type RecordWeightRequest struct {
	WeightID      string          `json:"weightId" validate:"required,uuid"`
	GrossWeight   decimal.Decimal `json:"grossWeight"`
	TareWeight    decimal.Decimal `json:"tareWeight"`
	StorageKind   string          `json:"storageKind" validate:"required"`
	TargetID      string          `json:"targetId,omitempty" validate:"omitempty,uuid"`
	TargetVariety string          `json:"targetVariety,omitempty"`
}

// CloseLotRequest freezes the trip list of the allotment.
type CloseLotRequest struct {
	ClosedAt time.Time `json:"closedAt" validate:"required"`
}

// SettleOwnerRequest runs the owner settlement phase over a weighed trip.
type SettleOwnerRequest struct {
	SettlementID  string          `json:"settlementId" validate:"required,uuid"`
	SuteRate      decimal.Decimal `json:"suteRate"`
	SuteUnit      string          `json:"suteUnit" validate:"required"`
	BaseRateValue decimal.Decimal `json:"baseRateValue"`
	BrokerageRate decimal.Decimal `json:"brokerageRate"`
	BrokerageUnit string          `json:"brokerageUnit" validate:"required"`
	EgbRate       decimal.Decimal `json:"egbRate"`
}

// SettleManagerRequest runs the manager settlement phase.
type SettleManagerRequest struct {
	LFRate     decimal.Decimal `json:"lfRate"`
	LFUnit     string          `json:"lfUnit" validate:"required"`
	HamaliRate decimal.Decimal `json:"hamaliRate"`
	HamaliUnit string          `json:"hamaliUnit" validate:"required"`
}

func parseEntryType(s string) (entry.EntryType, error) {
	for _, t := range []entry.EntryType{entry.NewSample, entry.ReadyLorry, entry.LocationSample} {
		if t.String() == s {
			return t, nil
		}
	}
	return entry.EntryTypeUnknown,
		errs.NewValueIsInvalidErrorWithCause("entryType", fmt.Errorf("%q is not a known entry type", s))
}

func parsePackaging(s string) (entry.Packaging, error) {
	for _, p := range []entry.Packaging{entry.Packaging75kg, entry.Packaging40kg} {
		if p.String() == s {
			return p, nil
		}
	}
	return entry.PackagingUnknown,
		errs.NewValueIsInvalidErrorWithCause("packaging", fmt.Errorf("%q is not a known packaging", s))
}

func parseLotDecision(s string) (entry.LotDecision, error) {
	for _, d := range []entry.LotDecision{entry.PassNoCook, entry.PassWithCook, entry.Rejected} {
		if d.String() == s {
			return d, nil
		}
	}
	return entry.DecisionPending,
		errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%q is not a known lot decision", s))
}

func parseCookingStatus(s string) (grading.CookingStatus, error) {
	candidates := []grading.CookingStatus{
		grading.CookingPass,
		grading.CookingFail,
		grading.CookingMedium,
		grading.CookingRecheck,
	}
	for _, c := range candidates {
		if c.String() == s {
			return c, nil
		}
	}
	return grading.CookingUnknown,
		errs.NewValueIsInvalidErrorWithCause("cookingStatus", fmt.Errorf("%q is not a known cooking status", s))
}

func parseBaseRateType(s string) (pricing.BaseRateType, error) {
	for _, t := range []pricing.BaseRateType{pricing.PDLoose, pricing.PDWB, pricing.MDLoose, pricing.MDWB} {
		if t.String() == s {
			return t, nil
		}
	}
	return pricing.BaseRateTypeUnknown,
		errs.NewValueIsInvalidErrorWithCause("baseRateType", fmt.Errorf("%q is not a known base rate type", s))
}

func parseRateUnit(param, s string) (pricing.RateUnit, error) {
	for _, u := range []pricing.RateUnit{pricing.PerBag, pricing.PerQuintal} {
		if u.String() == s {
			return u, nil
		}
	}
	return pricing.RateUnitUnknown,
		errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a known rate unit", s))
}

func parseStorageKind(s string) (lot.StorageKind, error) {
	candidates := []lot.StorageKind{
		lot.StorageWarehouse,
		lot.StorageDirectKunchinittu,
		lot.StorageDirectOutturn,
	}
	for _, k := range candidates {
		if k.String() == s {
			return k, nil
		}
	}
	return lot.StorageKindUnknown,
		errs.NewValueIsInvalidErrorWithCause("storageKind", fmt.Errorf("%q is not a known storage kind", s))
}

// delegation maps the request's field instructions to the offer delegation.
// A field absent from the request surfaces as an enabled field without a
// value, which the domain rejects; every field must be spelled out.
func (r SetOfferRequest) delegation() pricing.Delegation {
	spec := func(name pricing.FieldName) pricing.FieldSpec {
		f := r.Fields[string(name)]
		return pricing.FieldSpec{Enabled: !f.Delegated, Value: f.Value}
	}
	return pricing.Delegation{
		Sute:      spec(pricing.FieldSute),
		Moisture:  spec(pricing.FieldMoisture),
		Hamali:    spec(pricing.FieldHamali),
		Brokerage: spec(pricing.FieldBrokerage),
		LF:        spec(pricing.FieldLF),
	}
}

func (r FillMissingRequest) values() map[pricing.FieldName]decimal.Decimal {
	values := make(map[pricing.FieldName]decimal.Decimal, len(r.Values))
	for name, value := range r.Values {
		values[pricing.FieldName(name)] = value
	}
	return values
}

func (r SettleOwnerRequest) ownerInput() (settlement.OwnerInput, error) {
	suteUnit, err := parseRateUnit("suteUnit", r.SuteUnit)
	if err != nil {
		return settlement.OwnerInput{}, err
	}
	brokerageUnit, err := parseRateUnit("brokerageUnit", r.BrokerageUnit)
	if err != nil {
		return settlement.OwnerInput{}, err
	}
	return settlement.OwnerInput{
		SuteRate:      r.SuteRate,
		SuteUnit:      suteUnit,
		BaseRateValue: r.BaseRateValue,
		BrokerageRate: r.BrokerageRate,
		BrokerageUnit: brokerageUnit,
		EgbRate:       r.EgbRate,
	}, nil
}

func (r SettleManagerRequest) managerInput() (settlement.ManagerInput, error) {
	lfUnit, err := parseRateUnit("lfUnit", r.LFUnit)
	if err != nil {
		return settlement.ManagerInput{}, err
	}
	hamaliUnit, err := parseRateUnit("hamaliUnit", r.HamaliUnit)
	if err != nil {
		return settlement.ManagerInput{}, err
	}
	return settlement.ManagerInput{
		LFRate:     r.LFRate,
		LFUnit:     lfUnit,
		HamaliRate: r.HamaliRate,
		HamaliUnit: hamaliUnit,
	}, nil
}
