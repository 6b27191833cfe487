package menteeRepo

import (
	"context"

	"mentorify/models"
)

// MenteeRepository stores mentee accounts.
type MenteeRepository interface {
	Create(ctx context.Context, mentee *models.Mentee) error
	GetByID(ctx context.Context, id string) (*models.Mentee, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentee, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Mentee, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	List(ctx context.Context) ([]models.Mentee, error)
}
