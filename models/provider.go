package models

import "time"

// AvailabilityWindow is a recurring weekly open interval for one day of week.
// A provider has at most one window per day; absence means closed that day.
type AvailabilityWindow struct {
	DayOfWeek int         `bson:"day_of_week" json:"dayOfWeek"` // 0=Sunday..6=Saturday
	Start     MinuteOfDay `bson:"start" json:"start"`
	End       MinuteOfDay `bson:"end" json:"end"`
	Enabled   bool        `bson:"enabled" json:"enabled"`
}

// Contains reports whether [start,end) is fully inside the window and the
// window is enabled. Partial overlap with the window edge is not enough.
func (w *AvailabilityWindow) Contains(start, end MinuteOfDay) bool {
	return w.Enabled && w.Start <= start && end <= w.End
}

// Provider is the service-performing party in a booking (an "assembler").
// AverageRating is a denormalized aggregate; only the rating recomputation
// path writes it.
type Provider struct {
	ID             string               `bson:"id" json:"id"`
	UserID         string               `bson:"user_id" json:"userId"`
	Specialization string               `bson:"specialization" json:"specialization"`
	Description    string               `bson:"description,omitempty" json:"description,omitempty"`
	Location       string               `bson:"location,omitempty" json:"location,omitempty"`
	AverageRating  float64              `bson:"average_rating" json:"averageRating"`
	Verified       bool                 `bson:"verified" json:"verified"`
	Availability   []AvailabilityWindow `bson:"availability,omitempty" json:"availability,omitempty"`
	Deleted        bool                 `bson:"deleted" json:"-"`
	CreatedAt      time.Time            `bson:"created_at" json:"createdAt"`
}

// WindowFor returns the provider's availability window for a day of week,
// or nil if none is configured.
func (p *Provider) WindowFor(dayOfWeek int) *AvailabilityWindow {
	for i := range p.Availability {
		if p.Availability[i].DayOfWeek == dayOfWeek {
			return &p.Availability[i]
		}
	}
	return nil
}
