package handlers

import (
	"net/http"

	"assemblr/models"
	"assemblr/services/provider"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes provider lookup, search and schedule management.
type ProviderHandler struct {
	svc provider.ProviderService
}

// NewProviderHandler constructs a ProviderHandler.
func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{svc: svc}
}

// GetProvider handles GET /api/providers/:id.
func (h *ProviderHandler) GetProvider(c *gin.Context) {
	found, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListProviders handles GET /api/providers.
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	providers, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// SearchAvailable handles GET /api/providers/available?date=&startTime=&endTime=.
func (h *ProviderHandler) SearchAvailable(c *gin.Context) {
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

	providers, err := h.svc.SearchAvailable(c.Request.Context(), c.Query("date"), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

type setAvailabilityRequest struct {
	Windows []models.AvailabilityWindow `json:"availability" binding:"required"`
}

// SetAvailability handles PUT /api/providers/:id/availability.
func (h *ProviderHandler) SetAvailability(c *gin.Context) {
	var req setAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.svc.SetAvailability(c.Request.Context(), c.Param("id"), req.Windows); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
