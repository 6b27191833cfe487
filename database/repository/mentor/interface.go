package mentorRepo

import (
	"context"

	"mentorify/models"
)

// MentorRepository stores mentor accounts and their denormalized rating summary.
type MentorRepository interface {
	Create(ctx context.Context, mentor *models.Mentor) error
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentor, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Mentor, error)
	Update(ctx context.Context, mentor *models.Mentor) error
	Delete(ctx context.Context, id string) error
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	SetApproved(ctx context.Context, id string, approved bool) (*models.Mentor, error)
	List(ctx context.Context, approvedOnly bool) ([]models.Mentor, error)
	ListPending(ctx context.Context) ([]models.Mentor, error)

	// ApplyReviewRating increments the star bucket for the given rating,
	// bumps the review total and recomputes the weighted average from the
	// buckets in a single atomic update.
	ApplyReviewRating(ctx context.Context, mentorID string, rating int) error
}
