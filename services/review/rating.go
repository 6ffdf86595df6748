package review

import (
	"context"
	"fmt"

	"assemblr/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecomputeAverage averages the ratings of every non-deleted review for the
// provider, rounds to 2 decimal places (half away from zero), and writes the
// result into the provider's denormalized average_rating field. Zero reviews
// yield 0. The computation is a full re-read, so re-running it is always safe.
func (s *DefaultReviewService) RecomputeAverage(ctx context.Context, providerID string) (float64, error) {
	reviews, err := s.Reviews.ListByProvider(ctx, providerID)
	if err != nil {
		return 0, fmt.Errorf("failed to load reviews: %w", err)
	}

	average := decimal.Zero
	if len(reviews) > 0 {
		sum := decimal.Zero
		for i := range reviews {
			sum = sum.Add(decimal.NewFromInt(int64(reviews[i].Rating)))
		}
		average = sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(2)
	}

	rating := average.InexactFloat64()
	if err := s.Providers.UpdateRating(ctx, providerID, rating); err != nil {
		return 0, fmt.Errorf("failed to write provider rating: %w", err)
	}

	utils.GetLogger().Debug("provider rating recomputed",
		zap.String("providerID", providerID),
		zap.Float64("rating", rating),
		zap.Int("reviews", len(reviews)))
	return rating, nil
}
