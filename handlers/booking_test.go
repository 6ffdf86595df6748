package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assemblr/models"
	"assemblr/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService returns canned results so the handler's binding and
// error mapping can be tested without storage.
type stubBookingService struct {
	createErr error
	statusErr error
	slotFree  bool
}

func (s *stubBookingService) CreateBooking(_ context.Context, in booking.CreateBookingInput) (*models.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Booking{
		ID:         "book-1",
		CustomerID: in.CustomerID,
		ProviderID: in.ProviderID,
		ServiceID:  in.ServiceID,
		Date:       in.Date,
		Start:      in.Start,
		End:        in.End,
		Status:     models.StatusPending,
		TotalPrice: 50,
	}, nil
}

func (s *stubBookingService) UpdateStatus(_ context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return &models.Booking{ID: id, Status: status}, nil
}

func (s *stubBookingService) UpdateDetails(_ context.Context, id string, _ booking.UpdateBookingInput) (*models.Booking, error) {
	return &models.Booking{ID: id}, nil
}

func (s *stubBookingService) Delete(_ context.Context, _ string) error { return nil }

func (s *stubBookingService) GetByID(_ context.Context, id string) (*models.Booking, error) {
	return &models.Booking{ID: id}, nil
}

func (s *stubBookingService) ListByCustomer(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) ListByProvider(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) ListByDateRange(_ context.Context, _, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) CheckSlot(_ context.Context, _, _ string, _, _ models.MinuteOfDay) (bool, error) {
	return s.slotFree, nil
}

func newTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.POST("/api/bookings", h.CreateBooking)
	r.PUT("/api/bookings/:id/status", h.UpdateStatus)
	r.GET("/api/availability", h.CheckSlot)
	return r
}

const createBody = `{
	"customerId": "cust-1",
	"providerId": "prov-1",
	"serviceId": "svc-1",
	"date": "2026-08-31",
	"startTime": "09:00",
	"endTime": "11:30"
}`

func TestCreateBookingHandler(t *testing.T) {
	router := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(createBody))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, models.MinuteOfDay(540), resp.Start)
}

func TestCreateBookingHandlerConflict(t *testing.T) {
	router := newTestRouter(&stubBookingService{createErr: booking.ErrSlotUnavailable})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(createBody))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookingHandlerBadTime(t *testing.T) {
	router := newTestRouter(&stubBookingService{})

	body := strings.Replace(createBody, `"09:00"`, `"half past nine"`, 1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusHandler(t *testing.T) {
	router := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/book-1/status", strings.NewReader(`{"status":"Confirmed"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/bookings/book-1/status", strings.NewReader(`{"status":"Paused"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusHandlerInvalidTransition(t *testing.T) {
	router := newTestRouter(&stubBookingService{statusErr: booking.ErrInvalidTransition})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/book-1/status", strings.NewReader(`{"status":"Pending"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckSlotHandler(t *testing.T) {
	router := newTestRouter(&stubBookingService{slotFree: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?providerId=prov-1&date=2026-08-31&startTime=09:00&endTime=10:00", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["available"])
}
