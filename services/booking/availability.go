package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	providerRepo "assemblr/database/repository/provider"
	"assemblr/models"
	"assemblr/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const availabilityCacheTTL = 5 * time.Minute

// AvailabilityStore answers whether a provider is open for a requested
// window. It is read-only from the booking flow's perspective; schedules are
// edited through the provider service, which invalidates the cache.
type AvailabilityStore struct {
	Providers providerRepo.ProviderRepository
	Cache     *redis.Client // optional; nil disables caching
}

// GetWindow returns the provider's recurring window for a day of week, or nil
// if the provider is closed that day.
func (s *AvailabilityStore) GetWindow(ctx context.Context, providerID string, dayOfWeek int) (*models.AvailabilityWindow, error) {
	windows, err := s.windowsFor(ctx, providerID)
	if err != nil {
		return nil, err
	}
	for i := range windows {
		if windows[i].DayOfWeek == dayOfWeek {
			return &windows[i], nil
		}
	}
	return nil, nil
}

// IsOpen reports whether the provider has an enabled window on the date's day
// of week that fully contains [start,end). Containment, not mere overlap.
func (s *AvailabilityStore) IsOpen(ctx context.Context, providerID, date string, start, end models.MinuteOfDay) (bool, error) {
	dayOfWeek, err := models.DayOfWeekOf(date)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	window, err := s.GetWindow(ctx, providerID, dayOfWeek)
	if err != nil {
		return false, err
	}
	if window == nil {
		return false, nil
	}
	return window.Contains(start, end), nil
}

// InvalidateCache drops the cached windows for a provider. Called after a
// schedule edit.
func (s *AvailabilityStore) InvalidateCache(ctx context.Context, providerID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availabilityCacheKey(providerID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("providerID", providerID), zap.Error(err))
	}
}

func availabilityCacheKey(providerID string) string {
	return "availability:" + providerID
}

// windowsFor reads a provider's weekly windows through the cache. A cache
// failure falls back to the repository; availability must never be wrong just
// because redis is down.
func (s *AvailabilityStore) windowsFor(ctx context.Context, providerID string) ([]models.AvailabilityWindow, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, availabilityCacheKey(providerID)).Result()
		if err == nil {
			var windows []models.AvailabilityWindow
			if err := json.Unmarshal([]byte(cached), &windows); err == nil {
				return windows, nil
			}
		}
	}

	provider, err := s.Providers.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNoDocument) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to load provider availability: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(provider.Availability); err == nil {
			if err := s.Cache.Set(ctx, availabilityCacheKey(providerID), data, availabilityCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache availability",
					zap.String("providerID", providerID), zap.Error(err))
			}
		}
	}
	return provider.Availability, nil
}
