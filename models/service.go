package models

import "time"

// Service is a priced offering of one provider in one category. HourlyPrice
// is captured into a booking at creation time; later price edits never touch
// existing bookings.
type Service struct {
	ID            string    `bson:"id" json:"id"`
	ProviderID    string    `bson:"provider_id" json:"providerId"`
	CategoryID    string    `bson:"category_id" json:"categoryId"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	HourlyPrice   float64   `bson:"hourly_price" json:"hourlyPrice"`
	AverageRating float64   `bson:"average_rating" json:"averageRating"`
	ReviewCount   int       `bson:"review_count" json:"reviewCount"`
	Deleted       bool      `bson:"deleted" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
