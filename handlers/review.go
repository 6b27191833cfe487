package handlers

import (
	"mentorify/models"
	"mentorify/services/review"
	"mentorify/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes session review endpoints.
type ReviewHandler struct {
	reviews review.ReviewService
}

func NewReviewHandler(reviews review.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Submit records the mentee's review of their completed session.
func (h *ReviewHandler) Submit(c *gin.Context) {
	var input models.SubmitReviewInput
	if !bindJSON(c, &input) {
		return
	}
	rv, err := h.reviews.SubmitReview(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	created(c, rv)
}

// BySession returns the review on a session, if any.
func (h *ReviewHandler) BySession(c *gin.Context) {
	rv, err := h.reviews.GetSessionReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if rv == nil {
		utils.RespondError(c, utils.Errf(utils.CodeNotFound, "session has no review"))
		return
	}
	ok(c, rv)
}
