package queries

import (
	"context"
	"database/sql"

	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/settlement"
	"mandi/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEntryProgressQueryHandler derives entry progress straight from the
// stored rows, without loading the aggregate.
type GetEntryProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetEntryProgressQueryHandler creates a handler for progress queries.
func NewGetEntryProgressQueryHandler(db *gorm.DB) GetEntryProgressQueryHandler {
	return GetEntryProgressQueryHandler{db: db}
}

// Handle executes the progress query. The per-trip stage follows from which
// rows exist: no weight record means delivering, a weight record without a
// settlement means weighed, then the settlement phase decides the rest. The
// entry-level progress is the minimum stage across trips.
func (h GetEntryProgressQueryHandler) Handle(
	ctx context.Context,
	query GetEntryProgressQuery,
) (GetEntryProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEntryProgressQueryResponse{}, err
	}

	var status int
	row := h.db.WithContext(ctx).Raw(`
		SELECT status FROM entries WHERE id = ?
	`, query.EntryID().Bytes()).Row()
	if err := row.Scan(&status); err != nil {
		if err == sql.ErrNoRows {
			return GetEntryProgressQueryResponse{}, errs.NewObjectNotFoundError("entryID", query.EntryID().String())
		}
		return GetEntryProgressQueryResponse{}, err
	}

	resp := GetEntryProgressQueryResponse{
		EntryID: query.EntryID(),
		Status:  entry.Status(status).String(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			w.id IS NOT NULL,
			s.phase
		FROM trips t
		JOIN allotments a ON a.id = t.allotment_id
		LEFT JOIN weight_records w ON w.trip_id = t.id
		LEFT JOIN settlements s ON s.weight_record_id = w.id
		WHERE a.entry_id = ?
		ORDER BY t.id
	`, query.EntryID().Bytes()).Rows()
	if err != nil {
		return GetEntryProgressQueryResponse{}, err
	}
	defer rows.Close()

	minStage := lot.StageManagerSettled
	for rows.Next() {
		var id uuid.UUID
		var weighed bool
		var phase sql.NullInt32

		if err = rows.Scan(&id, &weighed, &phase); err != nil {
			return GetEntryProgressQueryResponse{}, err
		}

		tripID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetEntryProgressQueryResponse{}, idErr
		}

		stage := lot.StageDelivering
		switch {
		case weighed && phase.Valid && settlement.Phase(phase.Int32) == settlement.PhaseManagerSettled:
			stage = lot.StageManagerSettled
		case weighed && phase.Valid:
			stage = lot.StageOwnerSettled
		case weighed:
			stage = lot.StageWeighed
		}

		if stage < minStage {
			minStage = stage
		}
		resp.Trips = append(resp.Trips, TripProgressResponse{TripID: tripID, Stage: stage.String()})
	}
	if err = rows.Err(); err != nil {
		return GetEntryProgressQueryResponse{}, err
	}

	if entry.Status(status) == entry.StatusAllotted && len(resp.Trips) > 0 {
		resp.Progress = minStage.String()
	} else {
		resp.Progress = resp.Status
	}

	return resp, nil
}
