package queries

import (
	"errors"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/pkg/guard"
)

var ErrGetIncompleteOffersQueryIsNotConstructed = errors.New(
	"GetIncompleteOffersQuery must be created via NewGetIncompleteOffersQuery constructor",
)

// GetIncompleteOffersQuery retrieves pricing entries whose offers still have
// unfilled delegated fields. Used for the manager reminder job and for
// monitoring the pricing backlog.
type GetIncompleteOffersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetIncompleteOffersQuery creates a query for incomplete offers.
// This is a parameterless query.
func NewGetIncompleteOffersQuery() GetIncompleteOffersQuery {
	return GetIncompleteOffersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetIncompleteOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetIncompleteOffersQueryIsNotConstructed)
}

// GetIncompleteOffersQueryResponse lists the unfilled delegated fields of one
// offer.
type GetIncompleteOffersQueryResponse struct {
	EntryID       kernel.UUID
	OfferID       kernel.UUID
	MissingFields []string
}
