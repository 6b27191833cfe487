package review

import (
	"context"

	"mentorify/models"
)

// ReviewService records session reviews and keeps mentors' rating summaries
// in step with them.
type ReviewService interface {
	// SubmitReview creates the one review a mentee may leave on their
	// completed session, and folds its rating into the mentor's summary.
	SubmitReview(ctx context.Context, menteeID string, input models.SubmitReviewInput) (*models.Review, error)

	// GetSessionReview returns the review on a session, or nil when there is none.
	GetSessionReview(ctx context.Context, sessionID string) (*models.Review, error)

	// ListMentorReviews returns all reviews left on a mentor, newest first.
	ListMentorReviews(ctx context.Context, mentorID string) ([]models.Review, error)
}
