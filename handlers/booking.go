package handlers

import (
	"net/http"

	"assemblr/models"
	"assemblr/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	svc booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type createBookingRequest struct {
	CustomerID string             `json:"customerId" binding:"required"`
	ProviderID string             `json:"providerId" binding:"required"`
	ServiceID  string             `json:"serviceId" binding:"required"`
	Date       string             `json:"date" binding:"required"`
	Start      models.MinuteOfDay `json:"startTime"`
	End        models.MinuteOfDay `json:"endTime"`
	Notes      string             `json:"notes"`
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.svc.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		CustomerID: req.CustomerID,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Start:      req.Start,
		End:        req.End,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	status, err := models.ParseBookingStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type updateBookingRequest struct {
	Date  *string             `json:"date"`
	Start *models.MinuteOfDay `json:"startTime"`
	End   *models.MinuteOfDay `json:"endTime"`
	Notes *string             `json:"notes"`
}

// UpdateBooking handles PUT /api/bookings/:id (Pending bookings only).
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.svc.UpdateDetails(c.Request.Context(), c.Param("id"), booking.UpdateBookingInput{
		Date:  req.Date,
		Start: req.Start,
		End:   req.End,
		Notes: req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBooking handles DELETE /api/bookings/:id (soft delete).
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	found, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListByCustomer handles GET /api/bookings/customer/:customerId.
func (h *BookingHandler) ListByCustomer(c *gin.Context) {
	bookings, err := h.svc.ListByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListByProvider handles GET /api/bookings/provider/:providerId.
func (h *BookingHandler) ListByProvider(c *gin.Context) {
	bookings, err := h.svc.ListByProvider(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListByDateRange handles GET /api/bookings/date-range?from=...&to=...
func (h *BookingHandler) ListByDateRange(c *gin.Context) {
	bookings, err := h.svc.ListByDateRange(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
