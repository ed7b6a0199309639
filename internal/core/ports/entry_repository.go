package ports

import (
	"context"

	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/kernel"
)

// EntryRepository defines the persistence contract for entry aggregates.
// The aggregate is stored as one consistent graph: entry row plus grading,
// cooking, offer, allotment, trips, weights and settlements.
type EntryRepository interface {
	// Add persists a new entry aggregate.
	Add(ctx context.Context, aggregate *entry.Entry) error

	// Update persists changes to an existing entry aggregate. The stored
	// version must match the aggregate's version or the update fails with a
	// concurrency conflict.
	Update(ctx context.Context, aggregate *entry.Entry) error

	// Get retrieves an entry aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*entry.Entry, error)

	// GetAllInStatus retrieves all entries currently in the given workflow
	// status.
	GetAllInStatus(ctx context.Context, status entry.Status) ([]*entry.Entry, error)
}
