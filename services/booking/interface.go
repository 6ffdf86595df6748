package booking

import (
	"context"

	bookingRepo "assemblr/database/repository/booking"
	serviceRepo "assemblr/database/repository/service"
	"assemblr/models"
)

// CreateBookingInput is the request to create a booking. Times are half-open:
// the booking occupies [Start,End).
type CreateBookingInput struct {
	CustomerID string
	ProviderID string
	ServiceID  string
	Date       string // "YYYY-MM-DD"
	Start      models.MinuteOfDay
	End        models.MinuteOfDay
	Notes      string
}

// UpdateBookingInput carries partial field edits for a Pending booking. Nil
// means "leave unchanged".
type UpdateBookingInput struct {
	Date  *string
	Start *models.MinuteOfDay
	End   *models.MinuteOfDay
	Notes *string
}

// BookingService orchestrates booking creation, lifecycle and queries.
type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error)
	UpdateDetails(ctx context.Context, bookingID string, in UpdateBookingInput) (*models.Booking, error)
	Delete(ctx context.Context, bookingID string) error

	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ListByDateRange(ctx context.Context, from, to string) ([]models.Booking, error)

	// CheckSlot reports whether a window could be booked right now: the
	// provider is open for it and no active booking overlaps it.
	CheckSlot(ctx context.Context, providerID, date string, start, end models.MinuteOfDay) (bool, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings     bookingRepo.BookingRepository
	Services     serviceRepo.ServiceRepository
	Availability *AvailabilityStore
	Conflicts    *ConflictDetector

	locks *slotLocks
}

// NewBookingService wires a DefaultBookingService.
func NewBookingService(bookings bookingRepo.BookingRepository, services serviceRepo.ServiceRepository, availability *AvailabilityStore, conflicts *ConflictDetector) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:     bookings,
		Services:     services,
		Availability: availability,
		Conflicts:    conflicts,
		locks:        newSlotLocks(),
	}
}
