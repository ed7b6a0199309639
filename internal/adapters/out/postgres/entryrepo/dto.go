// Package entryrepo provides data transfer objects and mapping functions for
// entry persistence. The aggregate is stored as one relational graph: the
// entry row plus its grading, cooking, offer, allotment, trips, weight
// records and settlements. Restoring always goes through the domain
// constructors so a corrupted graph never reaches a caller.
package entryrepo

import (
	"time"

	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/grading"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/pricing"
	"mandi/internal/core/domain/model/settlement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO represents the database structure for persisting entry aggregates.
// The version column carries the optimistic concurrency token.
type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntryDate time.Time
	EntryType int
	Bags      int
	Packaging int
	Variety   string    `gorm:"index"`
	Status    int       `gorm:"index"`
	Decision  int
	Version   int

	Grading   *GradingDTO   `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	Cooking   *CookingDTO   `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	Offer     *OfferDTO     `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	Allotment *AllotmentDTO `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for entry rows.
func (EntryDTO) TableName() string {
	return "entries"
}

// GradingDTO represents the stored grading result of one entry.
type GradingDTO struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EntryID       uuid.UUID        `gorm:"type:uuid;index"`
	Moisture      decimal.Decimal  `gorm:"type:numeric"`
	CutOne        decimal.Decimal  `gorm:"type:numeric"`
	BendOne       decimal.Decimal  `gorm:"type:numeric"`
	CutTwo        decimal.Decimal  `gorm:"type:numeric"`
	BendTwo       decimal.Decimal  `gorm:"type:numeric"`
	MixPercent    *decimal.Decimal `gorm:"type:numeric"`
	DefectPercent *decimal.Decimal `gorm:"type:numeric"`
	GradedBy      string
}

// TableName specifies the database table name for grading rows.
func (GradingDTO) TableName() string {
	return "grading_results"
}

// CookingDTO represents the stored cook report of one entry.
type CookingDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntryID uuid.UUID `gorm:"type:uuid;index"`
	Status  int
	Remarks string
}

// TableName specifies the database table name for cooking rows.
func (CookingDTO) TableName() string {
	return "cooking_results"
}

// OfferDTO represents the stored offer of one entry. The five delegated fee
// fields live in their own table keyed by field name.
type OfferDTO struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EntryID       uuid.UUID        `gorm:"type:uuid;index"`
	OfferRate     decimal.Decimal  `gorm:"type:numeric"`
	BaseRateType  int
	BaseRateUnit  int
	BaseRateValue decimal.Decimal  `gorm:"type:numeric"`
	CustomDivisor *decimal.Decimal `gorm:"type:numeric"`
	EgbValue      *decimal.Decimal `gorm:"type:numeric"`

	Fields []OfferFieldDTO `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for offer rows.
func (OfferDTO) TableName() string {
	return "offers"
}

// OfferFieldDTO represents one delegated fee field of an offer.
// Value is NULL while a manager-owned field is unfilled.
type OfferFieldDTO struct {
	OfferID uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name    string           `gorm:"primaryKey"`
	Owner   int
	Value   *decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for offer field rows.
func (OfferFieldDTO) TableName() string {
	return "offer_fields"
}

// AllotmentDTO represents the stored allotment of one entry.
type AllotmentDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EntryID      uuid.UUID  `gorm:"type:uuid;index"`
	SupervisorID uuid.UUID  `gorm:"type:uuid;index"`
	AllottedBags int
	ClosedAt     *time.Time

	Trips []TripDTO `gorm:"foreignKey:AllotmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for allotment rows.
func (AllotmentDTO) TableName() string {
	return "allotments"
}

// TripDTO represents one delivery trip under an allotment.
type TripDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AllotmentID uuid.UUID       `gorm:"type:uuid;index"`
	LorryNumber string
	Bags        int
	Cut         decimal.Decimal `gorm:"type:numeric"`
	Bend        decimal.Decimal `gorm:"type:numeric"`
	Remarks     string

	Weight *WeightRecordDTO `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for trip rows.
func (TripDTO) TableName() string {
	return "trips"
}

// WeightRecordDTO represents the weighbridge outcome of one trip. Net weight
// is derived in the domain and never stored.
type WeightRecordDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TripID        uuid.UUID       `gorm:"type:uuid;index"`
	GrossWeight   decimal.Decimal `gorm:"type:numeric"`
	TareWeight    decimal.Decimal `gorm:"type:numeric"`
	StorageKind   int
	TargetID      *uuid.UUID      `gorm:"type:uuid"`
	TargetVariety string

	Settlement *SettlementDTO `gorm:"foreignKey:WeightRecordID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for weight record rows.
func (WeightRecordDTO) TableName() string {
	return "weight_records"
}

// SettlementDTO represents the financial row of one weight record. Only the
// phase inputs and terms are stored; the totals are recomputed on restore.
type SettlementDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WeightRecordID uuid.UUID       `gorm:"type:uuid;index"`
	Phase          int
	Bags           int
	NetWeight      decimal.Decimal `gorm:"type:numeric"`

	BaseRateType  int
	BaseRateUnit  int
	CustomDivisor *decimal.Decimal `gorm:"type:numeric"`

	SuteRate      decimal.Decimal `gorm:"type:numeric"`
	SuteUnit      int
	BaseRateValue decimal.Decimal `gorm:"type:numeric"`
	BrokerageRate decimal.Decimal `gorm:"type:numeric"`
	BrokerageUnit int
	EgbRate       decimal.Decimal `gorm:"type:numeric"`

	LFRate     *decimal.Decimal `gorm:"type:numeric"`
	LFUnit     *int
	HamaliRate *decimal.Decimal `gorm:"type:numeric"`
	HamaliUnit *int
}

// TableName specifies the database table name for settlement rows.
func (SettlementDTO) TableName() string {
	return "settlements"
}

// fromDomain converts an entry aggregate to its database representation,
// including the full child graph.
func fromDomain(e *entry.Entry) EntryDTO {
	dto := EntryDTO{
		ID:        e.ID().Bytes(),
		EntryDate: e.EntryDate(),
		EntryType: int(e.EntryType()),
		Bags:      e.Bags(),
		Packaging: int(e.Packaging()),
		Variety:   e.Variety(),
		Status:    int(e.Status()),
		Decision:  int(e.Decision()),
		Version:   e.Version(),
	}

	if g := e.Grading(); g != nil {
		dto.Grading = &GradingDTO{
			ID:            g.ID().Bytes(),
			EntryID:       dto.ID,
			Moisture:      g.Moisture(),
			CutOne:        g.CutOne(),
			BendOne:       g.BendOne(),
			CutTwo:        g.CutTwo(),
			BendTwo:       g.BendTwo(),
			MixPercent:    g.MixPercent(),
			DefectPercent: g.DefectPercent(),
			GradedBy:      g.GradedBy(),
		}
	}

	if c := e.Cooking(); c != nil {
		dto.Cooking = &CookingDTO{
			ID:      c.ID().Bytes(),
			EntryID: dto.ID,
			Status:  int(c.Status()),
			Remarks: c.Remarks(),
		}
	}

	if o := e.Offer(); o != nil {
		offerDTO := &OfferDTO{
			ID:            o.ID().Bytes(),
			EntryID:       dto.ID,
			OfferRate:     o.OfferRate(),
			BaseRateType:  int(o.BaseRateType()),
			BaseRateUnit:  int(o.BaseRateUnit()),
			BaseRateValue: o.BaseRateValue(),
			CustomDivisor: o.CustomDivisor(),
			EgbValue:      o.EgbValue(),
		}
		for _, name := range pricing.FieldNames() {
			f := o.Field(name)
			offerDTO.Fields = append(offerDTO.Fields, OfferFieldDTO{
				OfferID: offerDTO.ID,
				Name:    string(name),
				Owner:   int(f.Owner()),
				Value:   f.Value(),
			})
		}
		dto.Offer = offerDTO
	}

	if a := e.Allotment(); a != nil {
		allotmentDTO := &AllotmentDTO{
			ID:           a.ID().Bytes(),
			EntryID:      dto.ID,
			SupervisorID: a.SupervisorID().Bytes(),
			AllottedBags: a.AllottedBags(),
			ClosedAt:     a.ClosedAt(),
		}
		for _, t := range a.Trips() {
			allotmentDTO.Trips = append(allotmentDTO.Trips, tripFromDomain(allotmentDTO.ID, t))
		}
		dto.Allotment = allotmentDTO
	}

	return dto
}

func tripFromDomain(allotmentID uuid.UUID, t *lot.Trip) TripDTO {
	tripDTO := TripDTO{
		ID:          t.ID().Bytes(),
		AllotmentID: allotmentID,
		LorryNumber: t.LorryNumber(),
		Bags:        t.Bags(),
		Cut:         t.Cut(),
		Bend:        t.Bend(),
		Remarks:     t.Remarks(),
	}

	w := t.Weight()
	if w == nil {
		return tripDTO
	}

	weightDTO := &WeightRecordDTO{
		ID:            w.ID().Bytes(),
		TripID:        tripDTO.ID,
		GrossWeight:   w.GrossWeight(),
		TareWeight:    w.TareWeight(),
		StorageKind:   int(w.Target().Kind()),
		TargetVariety: w.Target().Variety(),
	}
	if targetID := w.Target().TargetID(); targetID != nil {
		raw := targetID.Bytes()
		weightDTO.TargetID = &raw
	}

	if s := w.Settlement(); s != nil {
		weightDTO.Settlement = settlementFromDomain(weightDTO.ID, s)
	}

	tripDTO.Weight = weightDTO
	return tripDTO
}

func settlementFromDomain(weightRecordID uuid.UUID, s *settlement.Settlement) *SettlementDTO {
	terms := s.Terms()
	ownerInput := s.OwnerInput()

	dto := &SettlementDTO{
		ID:             s.ID().Bytes(),
		WeightRecordID: weightRecordID,
		Phase:          int(s.Phase()),
		Bags:           s.Bags(),
		NetWeight:      s.NetWeight(),
		BaseRateType:   int(terms.BaseRateType),
		BaseRateUnit:   int(terms.BaseRateUnit),
		CustomDivisor:  terms.CustomDivisor,
		SuteRate:       ownerInput.SuteRate,
		SuteUnit:       int(ownerInput.SuteUnit),
		BaseRateValue:  ownerInput.BaseRateValue,
		BrokerageRate:  ownerInput.BrokerageRate,
		BrokerageUnit:  int(ownerInput.BrokerageUnit),
		EgbRate:        ownerInput.EgbRate,
	}

	if s.IsFinal() {
		managerInput := s.ManagerInput()
		lfRate := managerInput.LFRate
		lfUnit := int(managerInput.LFUnit)
		hamaliRate := managerInput.HamaliRate
		hamaliUnit := int(managerInput.HamaliUnit)
		dto.LFRate = &lfRate
		dto.LFUnit = &lfUnit
		dto.HamaliRate = &hamaliRate
		dto.HamaliUnit = &hamaliUnit
	}

	return dto
}

// toDomain converts a stored graph back to an entry aggregate using the
// domain restore constructors.
func toDomain(dto EntryDTO) (*entry.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var gradingResult *grading.GradingResult
	if dto.Grading != nil {
		gradingResult, err = gradingToDomain(*dto.Grading)
		if err != nil {
			return nil, err
		}
	}

	var cookingResult *grading.CookingResult
	if dto.Cooking != nil {
		cookingResult, err = cookingToDomain(*dto.Cooking)
		if err != nil {
			return nil, err
		}
	}

	var offer *pricing.Offer
	if dto.Offer != nil {
		offer, err = offerToDomain(*dto.Offer)
		if err != nil {
			return nil, err
		}
	}

	var allotment *lot.Allotment
	if dto.Allotment != nil {
		allotment, err = allotmentToDomain(*dto.Allotment)
		if err != nil {
			return nil, err
		}
	}

	return entry.RestoreEntry(
		id,
		dto.EntryDate,
		entry.EntryType(dto.EntryType),
		dto.Bags,
		entry.Packaging(dto.Packaging),
		dto.Variety,
		entry.Status(dto.Status),
		entry.LotDecision(dto.Decision),
		gradingResult,
		cookingResult,
		offer,
		allotment,
		dto.Version,
	)
}

func gradingToDomain(dto GradingDTO) (*grading.GradingResult, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return grading.RestoreGradingResult(
		id,
		dto.Moisture,
		dto.CutOne, dto.BendOne, dto.CutTwo, dto.BendTwo,
		dto.MixPercent, dto.DefectPercent,
		dto.GradedBy,
	)
}

func cookingToDomain(dto CookingDTO) (*grading.CookingResult, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return grading.RestoreCookingResult(id, grading.CookingStatus(dto.Status), dto.Remarks)
}

func offerToDomain(dto OfferDTO) (*pricing.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	fields := make(map[pricing.FieldName]pricing.DelegatedField, len(dto.Fields))
	for _, f := range dto.Fields {
		fields[pricing.FieldName(f.Name)] = pricing.RestoreDelegatedField(pricing.FieldOwner(f.Owner), f.Value)
	}

	return pricing.RestoreOffer(
		id,
		dto.OfferRate,
		pricing.BaseRateType(dto.BaseRateType),
		pricing.RateUnit(dto.BaseRateUnit),
		dto.BaseRateValue,
		dto.CustomDivisor,
		dto.EgbValue,
		fields,
	)
}

func allotmentToDomain(dto AllotmentDTO) (*lot.Allotment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	supervisorID, err := kernel.UUIDFromBytes(dto.SupervisorID[:])
	if err != nil {
		return nil, err
	}

	trips := make([]*lot.Trip, 0, len(dto.Trips))
	for _, tripDTO := range dto.Trips {
		t, tripErr := tripToDomain(tripDTO)
		if tripErr != nil {
			return nil, tripErr
		}
		trips = append(trips, t)
	}

	return lot.RestoreAllotment(id, supervisorID, dto.AllottedBags, dto.ClosedAt, trips)
}

func tripToDomain(dto TripDTO) (*lot.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var weight *lot.WeightRecord
	if dto.Weight != nil {
		weight, err = weightToDomain(*dto.Weight)
		if err != nil {
			return nil, err
		}
	}

	return lot.RestoreTrip(id, dto.LorryNumber, dto.Bags, dto.Cut, dto.Bend, dto.Remarks, weight)
}

func weightToDomain(dto WeightRecordDTO) (*lot.WeightRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var targetID *kernel.UUID
	if dto.TargetID != nil {
		tID, targetErr := kernel.UUIDFromBytes((*dto.TargetID)[:])
		if targetErr != nil {
			return nil, targetErr
		}
		targetID = &tID
	}

	target, err := lot.RestoreStorageTarget(lot.StorageKind(dto.StorageKind), targetID, dto.TargetVariety)
	if err != nil {
		return nil, err
	}

	var stl *settlement.Settlement
	if dto.Settlement != nil {
		stl, err = settlementToDomain(*dto.Settlement)
		if err != nil {
			return nil, err
		}
	}

	return lot.RestoreWeightRecord(id, dto.GrossWeight, dto.TareWeight, target, stl)
}

func settlementToDomain(dto SettlementDTO) (*settlement.Settlement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	terms := settlement.Terms{
		BaseRateType:  pricing.BaseRateType(dto.BaseRateType),
		BaseRateUnit:  pricing.RateUnit(dto.BaseRateUnit),
		CustomDivisor: dto.CustomDivisor,
	}
	ownerInput := settlement.OwnerInput{
		SuteRate:      dto.SuteRate,
		SuteUnit:      pricing.RateUnit(dto.SuteUnit),
		BaseRateValue: dto.BaseRateValue,
		BrokerageRate: dto.BrokerageRate,
		BrokerageUnit: pricing.RateUnit(dto.BrokerageUnit),
		EgbRate:       dto.EgbRate,
	}

	var managerInput *settlement.ManagerInput
	if dto.LFRate != nil && dto.LFUnit != nil && dto.HamaliRate != nil && dto.HamaliUnit != nil {
		managerInput = &settlement.ManagerInput{
			LFRate:     *dto.LFRate,
			LFUnit:     pricing.RateUnit(*dto.LFUnit),
			HamaliRate: *dto.HamaliRate,
			HamaliUnit: pricing.RateUnit(*dto.HamaliUnit),
		}
	}

	return settlement.RestoreSettlement(
		id,
		settlement.Phase(dto.Phase),
		terms,
		dto.Bags,
		dto.NetWeight,
		ownerInput,
		managerInput,
	)
}
