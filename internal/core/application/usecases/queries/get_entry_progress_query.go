// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows directly and never load full aggregates.
package queries

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/pkg/guard"
)

var ErrGetEntryProgressQueryIsNotConstructed = errors.New(
	"GetEntryProgressQuery must be created via NewGetEntryProgressQuery constructor",
)

// GetEntryProgressQuery retrieves the effective progress of one entry:
// the stored workflow status plus the derived per-trip delivery stages.
type GetEntryProgressQuery struct {
	entryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEntryProgressQuery creates a query for one entry's progress.
func NewGetEntryProgressQuery(entryID kernel.UUID) (GetEntryProgressQuery, error) {
	if err := entryID.Validate(); err != nil {
		return GetEntryProgressQuery{}, err
	}
	return GetEntryProgressQuery{
		entryID: entryID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEntryProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetEntryProgressQueryIsNotConstructed)
}

// EntryID returns the entry to report on.
func (q GetEntryProgressQuery) EntryID() kernel.UUID {
	return q.entryID
}

// TripProgressResponse is the derived stage of one trip.
type TripProgressResponse struct {
	TripID kernel.UUID
	Stage  string
}

// GetEntryProgressQueryResponse is the progress report for one entry.
// Progress equals the workflow status outside the allotted stage and the
// minimum trip stage inside it.
type GetEntryProgressQueryResponse struct {
	EntryID  kernel.UUID
	Status   string
	Progress string
	Trips    []TripProgressResponse
}
