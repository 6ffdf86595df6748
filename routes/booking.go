package routes

import (
	"assemblr/handlers"
	"assemblr/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler, rh *handlers.ReviewHandler) {
	booking := r.Group("/api/bookings")
	booking.Use(middleware.AuthRequired())
	{
		booking.POST("", bh.CreateBooking)
		booking.GET("/:id", bh.GetBooking)
		booking.PUT("/:id", bh.UpdateBooking)
		booking.PUT("/:id/status", bh.UpdateStatus)
		booking.DELETE("/:id", bh.DeleteBooking)
		booking.GET("/customer/:customerId", bh.ListByCustomer)
		booking.GET("/provider/:providerId", bh.ListByProvider)
		booking.GET("/date-range", bh.ListByDateRange)
	}

	// The slot check is a public read; clients probe it before signing in.
	r.GET("/api/availability", bh.CheckSlot)

	reviews := r.Group("/api/reviews")
	{
		reviews.POST("", middleware.AuthRequired(), rh.CreateReview)
		reviews.GET("/provider/:providerId", rh.ListByProvider)
	}
}
