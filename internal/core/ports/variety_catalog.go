package ports

import (
	"context"
)

// VarietyCatalog answers whether a variety name is known to the yard.
// Intake rejects entries declaring a variety the catalog has never seen.
type VarietyCatalog interface {
	// Exists reports whether the named variety is registered.
	Exists(ctx context.Context, name string) (bool, error)
}
