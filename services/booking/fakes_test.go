package booking

import (
	"context"
	"sync"

	bookingRepo "assemblr/database/repository/booking"
	providerRepo "assemblr/database/repository/provider"
	serviceRepo "assemblr/database/repository/service"
	"assemblr/models"
)

// memBookingRepo is an in-memory BookingRepository for tests. It applies the
// same soft-delete and active-status filtering as the mongo implementation.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *memBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Deleted {
		return nil, bookingRepo.ErrNoDocument
	}
	return &b, nil
}

func (r *memBookingRepo) Update(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.bookings[booking.ID]
	if !ok || existing.Deleted {
		return bookingRepo.ErrNoDocument
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memBookingRepo) SoftDelete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Deleted {
		return bookingRepo.ErrNoDocument
	}
	b.Deleted = true
	r.bookings[id] = b
	return nil
}

func (r *memBookingRepo) ListForDay(_ context.Context, providerID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date && !b.Deleted && b.Status.Blocking() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID && !b.Deleted {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && !b.Deleted {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByDateRange(_ context.Context, from, to string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date >= from && b.Date <= to && !b.Deleted {
			out = append(out, b)
		}
	}
	return out, nil
}

// memProviderRepo is an in-memory ProviderRepository for tests.
type memProviderRepo struct {
	mu        sync.Mutex
	providers map[string]models.Provider
}

func newMemProviderRepo(providers ...models.Provider) *memProviderRepo {
	r := &memProviderRepo{providers: make(map[string]models.Provider)}
	for _, p := range providers {
		r.providers[p.ID] = p
	}
	return r
}

func (r *memProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok || p.Deleted {
		return nil, providerRepo.ErrNoDocument
	}
	return &p, nil
}

func (r *memProviderRepo) List(_ context.Context) ([]models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Provider
	for _, p := range r.providers {
		if !p.Deleted {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProviderRepo) UpdateRating(_ context.Context, id string, rating float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok || p.Deleted {
		return providerRepo.ErrNoDocument
	}
	p.AverageRating = rating
	r.providers[id] = p
	return nil
}

func (r *memProviderRepo) ReplaceAvailability(_ context.Context, id string, windows []models.AvailabilityWindow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok || p.Deleted {
		return providerRepo.ErrNoDocument
	}
	p.Availability = windows
	r.providers[id] = p
	return nil
}

// memServiceRepo is an in-memory ServiceRepository for tests.
type memServiceRepo struct {
	services map[string]models.Service
}

func newMemServiceRepo(services ...models.Service) *memServiceRepo {
	r := &memServiceRepo{services: make(map[string]models.Service)}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *memServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok || s.Deleted {
		return nil, serviceRepo.ErrNoDocument
	}
	return &s, nil
}
