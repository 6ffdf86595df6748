package routes

import (
	"assemblr/handlers"
	"assemblr/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterProviderRoutes registers provider lookup, availability search and
// schedule management endpoints.
func RegisterProviderRoutes(r *gin.Engine, ph *handlers.ProviderHandler) {
	providers := r.Group("/api/providers")
	{
		providers.GET("", ph.ListProviders)
		providers.GET("/available", ph.SearchAvailable)
		providers.GET("/:id", ph.GetProvider)
		providers.PUT("/:id/availability", middleware.AuthRequired(), ph.SetAvailability)
	}
}
