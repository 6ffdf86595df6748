package booking

import "errors"

// Error taxonomy for the booking engine. Every validation failure is detected
// before any write and surfaces as one of these; nothing is retried.
var (
	// ErrServiceNotFound: the referenced service is absent or soft-deleted.
	ErrServiceNotFound = errors.New("service not found")

	// ErrBookingNotFound: the referenced booking is absent or soft-deleted.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrProviderNotFound: the referenced provider is absent or soft-deleted.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrSlotUnavailable: the requested window conflicts with an existing
	// booking or falls outside the provider's declared open hours.
	ErrSlotUnavailable = errors.New("time slot is not available")

	// ErrInvalidTransition: the requested status change is not a legal
	// lifecycle edge.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput: malformed time range, date, or reference.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBookingLocked: a field edit was attempted on a non-Pending booking.
	ErrBookingLocked = errors.New("booking is locked")
)
