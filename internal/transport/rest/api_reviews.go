package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reviewhttpmapper "github.com/enayetchefonline/partner-gateway/internal/domains/reviews/adapters/http/mapper"
	reviewsports "github.com/enayetchefonline/partner-gateway/internal/domains/reviews/ports"
)

// ReviewAPI wires HTTP transport with the reviews bounded context service.
type ReviewAPI struct {
	service reviewsports.Service
}

// NewReviewAPI creates a ReviewAPI backed by the provided service.
func NewReviewAPI(service reviewsports.Service) ReviewAPI {
	return ReviewAPI{service: service}
}

// Get /v1/restaurants/:restaurantId/reviews
// Customer reviews with the running average rating
func (api *ReviewAPI) ListReviews(c *gin.Context) {
	reviews, err := api.service.List(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewhttpmapper.FromReviews(reviews))
}

// Put /v1/reviews/:reviewId/status
// Publish or hide a review on the storefront
func (api *ReviewAPI) SetPublished(c *gin.Context) {
	var payload reviewhttpmapper.PublishRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.service.SetPublished(c.Request.Context(), c.Param("reviewId"), *payload.Published); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /v1/reviews/:reviewId/reply
// Post the restaurateur's reply to a review
func (api *ReviewAPI) Reply(c *gin.Context) {
	var payload reviewhttpmapper.ReplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.service.Reply(c.Request.Context(), c.Param("reviewId"), payload.Message); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
