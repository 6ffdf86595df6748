package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "assemblr/database/repository/booking"
	reviewRepo "assemblr/database/repository/review"
	"assemblr/models"
	"assemblr/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidRating: rating outside the integer range 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrBookingNotFound: the rated booking is absent or soft-deleted.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingNotReviewable: the booking is not Completed, belongs to a
	// different customer or provider, or already has a review.
	ErrBookingNotReviewable = errors.New("booking cannot be reviewed")
)

// CreateReview validates the request against the rated booking, persists the
// review, and synchronously recomputes the provider's average rating.
func (s *DefaultReviewService) CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	booking, err := s.Bookings.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNoDocument) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.CustomerID != in.CustomerID || booking.ProviderID != in.ProviderID {
		return nil, fmt.Errorf("%w: booking belongs to another customer or provider", ErrBookingNotReviewable)
	}
	if booking.Status != models.StatusCompleted {
		return nil, fmt.Errorf("%w: booking is %s, not Completed", ErrBookingNotReviewable, booking.Status)
	}
	if existing, err := s.Reviews.GetByBooking(ctx, in.BookingID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: already reviewed", ErrBookingNotReviewable)
	} else if err != nil && !errors.Is(err, reviewRepo.ErrNoDocument) {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		ProviderID: in.ProviderID,
		BookingID:  in.BookingID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  time.Now(),
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to persist review: %w", err)
	}

	if _, err := s.RecomputeAverage(ctx, in.ProviderID); err != nil {
		// The review is in; the aggregate will be repaired by the next
		// recompute (nightly reconciliation or the next review).
		utils.GetLogger().Error("failed to recompute provider rating",
			zap.String("providerID", in.ProviderID), zap.Error(err))
	}

	return review, nil
}

func (s *DefaultReviewService) ListByProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	return s.Reviews.ListByProvider(ctx, providerID)
}
