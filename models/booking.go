package models

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusConfirmed  BookingStatus = "Confirmed"
	StatusInProgress BookingStatus = "InProgress"
	StatusCompleted  BookingStatus = "Completed"
	StatusCancelled  BookingStatus = "Cancelled"
	StatusRejected   BookingStatus = "Rejected"
)

// ParseBookingStatus validates a status value received from a client.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusRejected:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// transitions is the closed set of legal lifecycle edges. Anything not listed
// here is rejected, including self-transitions.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether moving from one status to another is legal.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is legal from this status.
func (s BookingStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// Blocking reports whether a booking in this status occupies its time window.
// Cancelled and Rejected bookings free their slot.
func (s BookingStatus) Blocking() bool {
	return s != StatusCancelled && s != StatusRejected
}

// Booking is one time-boxed appointment of a customer with a provider.
// For a fixed (provider, date), active bookings have pairwise disjoint
// [start,end) windows.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	CustomerID string        `bson:"customer_id" json:"customerId"`
	ProviderID string        `bson:"provider_id" json:"providerId"`
	ServiceID  string        `bson:"service_id" json:"serviceId"`
	Date       string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start      MinuteOfDay   `bson:"start" json:"startTime"`
	End        MinuteOfDay   `bson:"end" json:"endTime"`
	Notes      string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Status     BookingStatus `bson:"status" json:"status"`
	TotalPrice float64       `bson:"total_price" json:"totalPrice"` // captured at creation
	Deleted    bool          `bson:"deleted" json:"-"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Overlaps reports whether the booking's half-open window intersects
// [start,end). Touching windows do not overlap.
func (b *Booking) Overlaps(start, end MinuteOfDay) bool {
	return start < b.End && b.Start < end
}
