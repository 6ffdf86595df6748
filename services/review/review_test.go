package review

import (
	"context"
	"sync"
	"testing"
	"time"

	bookingRepo "assemblr/database/repository/booking"
	providerRepo "assemblr/database/repository/provider"
	reviewRepo "assemblr/database/repository/review"
	"assemblr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memReviewRepo struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (r *memReviewRepo) Create(_ context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memReviewRepo) ListByProvider(_ context.Context, providerID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ProviderID == providerID && !rv.Deleted {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *memReviewRepo) GetByBooking(_ context.Context, bookingID string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if rv.BookingID == bookingID && !rv.Deleted {
			out := rv
			return &out, nil
		}
	}
	return nil, reviewRepo.ErrNoDocument
}

type memProviderRepo struct {
	mu        sync.Mutex
	providers map[string]models.Provider
}

func (r *memProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, providerRepo.ErrNoDocument
	}
	return &p, nil
}

func (r *memProviderRepo) List(_ context.Context) ([]models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Provider
	for _, p := range r.providers {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProviderRepo) UpdateRating(_ context.Context, id string, rating float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
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
	if !ok {
		return providerRepo.ErrNoDocument
	}
	p.Availability = windows
	r.providers[id] = p
	return nil
}

type memBookingRepo struct {
	bookings map[string]models.Booking
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.Deleted {
		return nil, bookingRepo.ErrNoDocument
	}
	return &b, nil
}

func (r *memBookingRepo) Create(_ context.Context, b *models.Booking) error { return nil }
func (r *memBookingRepo) Update(_ context.Context, b *models.Booking) error { return nil }
func (r *memBookingRepo) SoftDelete(_ context.Context, id string) error     { return nil }
func (r *memBookingRepo) ListForDay(_ context.Context, providerID, date string) ([]models.Booking, error) {
	return nil, nil
}
func (r *memBookingRepo) ListByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	return nil, nil
}
func (r *memBookingRepo) ListByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	return nil, nil
}
func (r *memBookingRepo) ListByDateRange(_ context.Context, from, to string) ([]models.Booking, error) {
	return nil, nil
}

func newTestService() (*DefaultReviewService, *memProviderRepo, *memReviewRepo) {
	providers := &memProviderRepo{providers: map[string]models.Provider{
		"prov-1": {ID: "prov-1"},
	}}
	reviews := &memReviewRepo{}
	bookings := &memBookingRepo{bookings: map[string]models.Booking{
		"book-1": {ID: "book-1", CustomerID: "cust-1", ProviderID: "prov-1", Status: models.StatusCompleted},
		"book-2": {ID: "book-2", CustomerID: "cust-1", ProviderID: "prov-1", Status: models.StatusConfirmed},
		"book-3": {ID: "book-3", CustomerID: "cust-1", ProviderID: "prov-1", Status: models.StatusCompleted},
		"book-4": {ID: "book-4", CustomerID: "cust-1", ProviderID: "prov-1", Status: models.StatusCompleted},
	}}
	svc := &DefaultReviewService{Reviews: reviews, Providers: providers, Bookings: bookings}
	return svc, providers, reviews
}

func seedReview(reviews *memReviewRepo) {
	_ = reviews.Create(context.Background(), &models.Review{
		ID: "r0", CustomerID: "cust-9", ProviderID: "prov-1", BookingID: "book-0",
		Rating: 5, CreatedAt: time.Now(),
	})
}

func TestCreateReviewRecomputesRating(t *testing.T) {
	svc, providers, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, CreateReviewInput{
		CustomerID: "cust-1", ProviderID: "prov-1", BookingID: "book-1",
		Rating: 4, Comment: "solid work",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	p, err := providers.GetByID(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, p.AverageRating)
}

func TestCreateReviewValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	base := CreateReviewInput{CustomerID: "cust-1", ProviderID: "prov-1", BookingID: "book-1", Rating: 4}

	in := base
	in.Rating = 0
	_, err := svc.CreateReview(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidRating)

	in = base
	in.Rating = 6
	_, err = svc.CreateReview(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidRating)

	in = base
	in.BookingID = "ghost"
	_, err = svc.CreateReview(ctx, in)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Not yet completed.
	in = base
	in.BookingID = "book-2"
	_, err = svc.CreateReview(ctx, in)
	assert.ErrorIs(t, err, ErrBookingNotReviewable)

	// Someone else's booking.
	in = base
	in.CustomerID = "cust-2"
	_, err = svc.CreateReview(ctx, in)
	assert.ErrorIs(t, err, ErrBookingNotReviewable)
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	in := CreateReviewInput{CustomerID: "cust-1", ProviderID: "prov-1", BookingID: "book-1", Rating: 5}
	_, err := svc.CreateReview(ctx, in)
	require.NoError(t, err)

	_, err = svc.CreateReview(ctx, in)
	assert.ErrorIs(t, err, ErrBookingNotReviewable)
}

func TestRecomputeAverageRounding(t *testing.T) {
	svc, providers, _ := newTestService()
	ctx := context.Background()

	// Ratings 5, 4, 4 average to 4.33, not 4.3 or a long fraction.
	for i, in := range []CreateReviewInput{
		{CustomerID: "cust-1", ProviderID: "prov-1", BookingID: "book-1", Rating: 5},
		{CustomerID: "cust-1", ProviderID: "prov-1", BookingID: "book-3", Rating: 4},
		{CustomerID: "cust-1", ProviderID: "prov-1", BookingID: "book-4", Rating: 4},
	} {
		_, err := svc.CreateReview(ctx, in)
		require.NoError(t, err, "review %d", i)
	}

	p, err := providers.GetByID(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 4.33, p.AverageRating)
}

func TestRecomputeAverageIdempotent(t *testing.T) {
	svc, _, reviews := newTestService()
	ctx := context.Background()
	seedReview(reviews)

	first, err := svc.RecomputeAverage(ctx, "prov-1")
	require.NoError(t, err)
	second, err := svc.RecomputeAverage(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecomputeAverageNoReviews(t *testing.T) {
	svc, providers, _ := newTestService()
	ctx := context.Background()

	avg, err := svc.RecomputeAverage(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	p, err := providers.GetByID(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.AverageRating)
}

func TestRecomputeIgnoresDeletedReviews(t *testing.T) {
	svc, _, reviews := newTestService()
	ctx := context.Background()

	_ = reviews.Create(ctx, &models.Review{ID: "r1", ProviderID: "prov-1", Rating: 5})
	_ = reviews.Create(ctx, &models.Review{ID: "r2", ProviderID: "prov-1", Rating: 1, Deleted: true})

	avg, err := svc.RecomputeAverage(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, avg)
}
