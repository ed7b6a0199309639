package queries

import (
	"context"

	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetIncompleteOffersQueryHandler retrieves offers awaiting manager values.
type GetIncompleteOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetIncompleteOffersQueryHandler creates a handler for incomplete offer
// queries.
func NewGetIncompleteOffersQueryHandler(db *gorm.DB) GetIncompleteOffersQueryHandler {
	return GetIncompleteOffersQueryHandler{db: db}
}

// Handle executes the query. Only entries still in the pricing stage are
// reported; an unfilled field is a manager-owned offer field with no value.
func (h GetIncompleteOffersQueryHandler) Handle(
	ctx context.Context,
	query GetIncompleteOffersQuery,
) ([]GetIncompleteOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]GetIncompleteOffersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			o.id,
			f.name
		FROM entries e
		JOIN offers o ON o.entry_id = e.id
		JOIN offer_fields f ON f.offer_id = o.id
		WHERE e.status = ?
		  AND f.owner = ?
		  AND f.value IS NULL
		ORDER BY e.id, f.name
	`, entry.StatusPricing, pricing.OwnedByManager).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryRaw, offerRaw uuid.UUID
		var fieldName string

		if err = rows.Scan(&entryRaw, &offerRaw, &fieldName); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(entryRaw[:])
		if idErr != nil {
			return nil, idErr
		}
		offerID, idErr := kernel.UUIDFromBytes(offerRaw[:])
		if idErr != nil {
			return nil, idErr
		}

		if n := len(offers); n > 0 && offers[n-1].OfferID.IsEqual(offerID) {
			offers[n-1].MissingFields = append(offers[n-1].MissingFields, fieldName)
			continue
		}
		offers = append(offers, GetIncompleteOffersQueryResponse{
			EntryID:       entryID,
			OfferID:       offerID,
			MissingFields: []string{fieldName},
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
