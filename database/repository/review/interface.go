package reviewRepo

import (
	"context"

	"mentorify/models"
)

// ReviewRepository stores session reviews. Reviews are immutable once created.
type ReviewRepository interface {
	// Create inserts a review. ErrReviewExists is returned when the session
	// already has one.
	Create(ctx context.Context, review *models.Review) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.Review, error)
	ListForMentor(ctx context.Context, mentorID string) ([]models.Review, error)
}
