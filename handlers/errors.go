package handlers

import (
	"errors"
	"net/http"

	"assemblr/services/booking"
	"assemblr/services/provider"
	"assemblr/services/review"
	"assemblr/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service-level errors onto HTTP statuses in one place so
// every endpoint reports the taxonomy consistently.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrServiceNotFound),
		errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrProviderNotFound),
		errors.Is(err, review.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "slot unavailable", err.Error())
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrBookingLocked),
		errors.Is(err, review.ErrBookingNotReviewable):
		utils.JSONError(c, http.StatusConflict, "conflicting state", err.Error())
	case errors.Is(err, booking.ErrInvalidInput),
		errors.Is(err, review.ErrInvalidRating),
		errors.Is(err, provider.ErrInvalidAvailability):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
