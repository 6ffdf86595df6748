package providerRepo

import (
	"context"

	"assemblr/models"
)

// ProviderRepository defines the interface for provider data access. The
// booking flow reads providers; the only writes it performs are the two
// narrowly-scoped updates below.
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	List(ctx context.Context) ([]models.Provider, error)

	// UpdateRating writes the denormalized average rating. Invoked only by
	// the rating recomputation path.
	UpdateRating(ctx context.Context, id string, rating float64) error

	// ReplaceAvailability swaps a provider's full weekly availability set.
	ReplaceAvailability(ctx context.Context, id string, windows []models.AvailabilityWindow) error
}
