package handlers

import (
	"net/http"

	"assemblr/services/review"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review creation and listing.
type ReviewHandler struct {
	svc review.ReviewService
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

type createReviewRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
	ProviderID string `json:"providerId" binding:"required"`
	BookingID  string `json:"bookingId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment"`
}

// CreateReview handles POST /api/reviews. Creating a review recomputes the
// provider's average rating.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.svc.CreateReview(c.Request.Context(), review.CreateReviewInput{
		CustomerID: req.CustomerID,
		ProviderID: req.ProviderID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListByProvider handles GET /api/reviews/provider/:providerId.
func (h *ReviewHandler) ListByProvider(c *gin.Context) {
	reviews, err := h.svc.ListByProvider(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
