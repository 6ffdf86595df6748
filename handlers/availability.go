package handlers

import (
	"net/http"

	"assemblr/models"

	"github.com/gin-gonic/gin"
)

// CheckSlot handles GET /api/availability?providerId=&date=&startTime=&endTime=.
// It answers whether the window could be booked right now.
func (h *BookingHandler) CheckSlot(c *gin.Context) {
	providerID := c.Query("providerId")
	date := c.Query("date")
	start, err := models.ParseMinuteOfDay(c.Query("startTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	end, err := models.ParseMinuteOfDay(c.Query("endTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	available, err := h.svc.CheckSlot(c.Request.Context(), providerID, date, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}
