package models

import "time"

// Review rates one completed booking. Creating one triggers recomputation of
// the provider's denormalized average rating.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customer_id" json:"customerId"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	BookingID  string    `bson:"booking_id" json:"bookingId"`
	Rating     int       `bson:"rating" json:"rating"` // integer 1..5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Deleted    bool      `bson:"deleted" json:"-"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
