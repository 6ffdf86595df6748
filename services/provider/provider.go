package provider

import (
	"context"
	"errors"
	"fmt"

	providerRepo "assemblr/database/repository/provider"
	"assemblr/models"
	"assemblr/services/booking"
)

// ErrInvalidAvailability: a submitted weekly schedule violates the window
// invariants.
var ErrInvalidAvailability = errors.New("invalid availability windows")

func (s *DefaultProviderService) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNoDocument) {
			return nil, booking.ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	return p, nil
}

func (s *DefaultProviderService) List(ctx context.Context) ([]models.Provider, error) {
	return s.Repo.List(ctx)
}

// SearchAvailable filters the provider set down to those open for the whole
// requested window on that date's day of week.
func (s *DefaultProviderService) SearchAvailable(ctx context.Context, date string, start, end models.MinuteOfDay) ([]models.Provider, error) {
	dayOfWeek, err := models.DayOfWeekOf(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", booking.ErrInvalidInput, err)
	}
	if !start.Valid() || !end.Valid() || start >= end {
		return nil, fmt.Errorf("%w: malformed time range", booking.ErrInvalidInput)
	}

	providers, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	var open []models.Provider
	for i := range providers {
		window := providers[i].WindowFor(dayOfWeek)
		if window != nil && window.Contains(start, end) {
			open = append(open, providers[i])
		}
	}
	return open, nil
}

// SetAvailability validates and persists a provider's weekly windows, then
// drops the cached copy so the booking path sees the change immediately.
func (s *DefaultProviderService) SetAvailability(ctx context.Context, providerID string, windows []models.AvailabilityWindow) error {
	seen := make(map[int]bool, len(windows))
	for i := range windows {
		w := &windows[i]
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return fmt.Errorf("%w: day of week %d out of range", ErrInvalidAvailability, w.DayOfWeek)
		}
		if !w.Start.Valid() || !w.End.Valid() || w.Start >= w.End {
			return fmt.Errorf("%w: window start must be before end", ErrInvalidAvailability)
		}
		if seen[w.DayOfWeek] {
			return fmt.Errorf("%w: duplicate window for day %d", ErrInvalidAvailability, w.DayOfWeek)
		}
		seen[w.DayOfWeek] = true
	}

	if err := s.Repo.ReplaceAvailability(ctx, providerID, windows); err != nil {
		if errors.Is(err, providerRepo.ErrNoDocument) {
			return booking.ErrProviderNotFound
		}
		return fmt.Errorf("failed to replace availability: %w", err)
	}
	if s.Store != nil {
		s.Store.InvalidateCache(ctx, providerID)
	}
	return nil
}
