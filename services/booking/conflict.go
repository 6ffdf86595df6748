package booking

import (
	"context"
	"fmt"

	bookingRepo "assemblr/database/repository/booking"
	"assemblr/models"
)

// ConflictDetector decides whether a requested window collides with an
// existing active booking. Pure read; it never writes.
type ConflictDetector struct {
	Bookings bookingRepo.BookingRepository
}

// HasConflict scans the provider's active bookings on the given date and
// reports whether any of them overlaps [start,end). Half-open intervals
// overlap iff start < other.End && other.Start < end; windows that merely
// touch do not conflict. excludeID, when non-empty, skips one booking, used
// when re-validating an edit against the booking's own prior row.
func (d *ConflictDetector) HasConflict(ctx context.Context, providerID, date string, start, end models.MinuteOfDay, excludeID string) (bool, error) {
	existing, err := d.Bookings.ListForDay(ctx, providerID, date)
	if err != nil {
		return false, fmt.Errorf("failed to load bookings for conflict check: %w", err)
	}
	for i := range existing {
		if existing[i].ID == excludeID {
			continue
		}
		if existing[i].Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}
