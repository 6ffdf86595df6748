package bookingRepo

import (
	"context"

	"assemblr/models"
)

// BookingRepository defines the interface for booking data access.
// Rows are never physically deleted; SoftDelete flips the deleted flag and
// every read filters it out.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	SoftDelete(ctx context.Context, id string) error

	// ListForDay returns the active (slot-occupying) bookings for a provider
	// on one calendar date. This is the conflict detector's working set.
	ListForDay(ctx context.Context, providerID, date string) ([]models.Booking, error)

	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ListByDateRange(ctx context.Context, from, to string) ([]models.Booking, error)
}
