package entryrepo

import (
	"context"
	"errors"

	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEntryRepository implements EntryRepository using GORM.
type GormEntryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEntryRepository creates a new GORM entry repository.
func NewGormEntryRepository(db *gorm.DB, tracker aggregateTracker) *GormEntryRepository {
	return &GormEntryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new entry aggregate to the database. The stored version starts
// at 1 regardless of the in-memory aggregate.
func (r *GormEntryRepository) Add(ctx context.Context, aggregate *entry.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing entry aggregate. The entry row is written with an
// optimistic version check; a zero row count means another transaction got
// there first. The child graph is replaced wholesale, which keeps the mapping
// simple and is cheap at the size of one entry.
func (r *GormEntryRepository) Update(ctx context.Context, aggregate *entry.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&EntryDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"entry_date": dto.EntryDate,
			"entry_type": dto.EntryType,
			"bags":       dto.Bags,
			"packaging":  dto.Packaging,
			"variety":    dto.Variety,
			"status":     dto.Status,
			"decision":   dto.Decision,
			"version":    aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("entry", aggregate.ID().String())
	}

	if err := r.replaceChildren(db, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceChildren deletes and re-creates the child graph of one entry row.
// Foreign keys cascade, so deleting offers and allotments takes the offer
// fields, trips, weight records and settlements with them.
func (r *GormEntryRepository) replaceChildren(db *gorm.DB, dto EntryDTO) error {
	if err := db.Where("entry_id = ?", dto.ID).Delete(&GradingDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("entry_id = ?", dto.ID).Delete(&CookingDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("entry_id = ?", dto.ID).Delete(&OfferDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("entry_id = ?", dto.ID).Delete(&AllotmentDTO{}).Error; err != nil {
		return err
	}

	if dto.Grading != nil {
		if err := db.Create(dto.Grading).Error; err != nil {
			return err
		}
	}
	if dto.Cooking != nil {
		if err := db.Create(dto.Cooking).Error; err != nil {
			return err
		}
	}
	if dto.Offer != nil {
		if err := db.Create(dto.Offer).Error; err != nil {
			return err
		}
	}
	if dto.Allotment != nil {
		if err := db.Create(dto.Allotment).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an entry aggregate by ID, loading the full child graph.
func (r *GormEntryRepository) Get(ctx context.Context, id kernel.UUID) (*entry.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EntryDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("entry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all entries in the given workflow status.
func (r *GormEntryRepository) GetAllInStatus(ctx context.Context, status entry.Status) ([]*entry.Entry, error) {
	var dtos []EntryDTO
	if err := r.preloaded(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	entries := make([]*entry.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *GormEntryRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Grading").
		Preload("Cooking").
		Preload("Offer").
		Preload("Offer.Fields").
		Preload("Allotment").
		Preload("Allotment.Trips").
		Preload("Allotment.Trips.Weight").
		Preload("Allotment.Trips.Weight.Settlement")
}
