package review

import (
	"context"

	bookingRepo "assemblr/database/repository/booking"
	providerRepo "assemblr/database/repository/provider"
	reviewRepo "assemblr/database/repository/review"
	"assemblr/models"
)

// CreateReviewInput is the request to rate one completed booking.
type CreateReviewInput struct {
	CustomerID string
	ProviderID string
	BookingID  string
	Rating     int // 1..5
	Comment    string
}

// ReviewService creates reviews and maintains the provider's denormalized
// average rating.
type ReviewService interface {
	CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Review, error)

	// RecomputeAverage rereads every non-deleted review for the provider,
	// averages the ratings, and writes the result back. Idempotent; safe to
	// re-run at any time.
	RecomputeAverage(ctx context.Context, providerID string) (float64, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Reviews   reviewRepo.ReviewRepository
	Providers providerRepo.ProviderRepository
	Bookings  bookingRepo.BookingRepository
}
