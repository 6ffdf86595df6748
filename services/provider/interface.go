package provider

import (
	"context"

	providerRepo "assemblr/database/repository/provider"
	"assemblr/models"
	"assemblr/services/booking"
)

// ProviderService exposes provider lookup, availability-aware search, and
// weekly schedule management.
type ProviderService interface {
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	List(ctx context.Context) ([]models.Provider, error)

	// SearchAvailable returns the providers whose enabled window for the
	// date's day of week fully contains [start,end).
	SearchAvailable(ctx context.Context, date string, start, end models.MinuteOfDay) ([]models.Provider, error)

	// SetAvailability replaces a provider's weekly windows after validation:
	// day in 0..6, start < end, at most one window per day.
	SetAvailability(ctx context.Context, providerID string, windows []models.AvailabilityWindow) error
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo  providerRepo.ProviderRepository
	Store *booking.AvailabilityStore
}
