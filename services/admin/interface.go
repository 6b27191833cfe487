package admin

import (
	"context"

	"mentorify/models"
)

// AdminService covers platform administration: admin authentication and the
// mentor approval queue. Admin accounts are provisioned out of band; there is
// no admin signup.
type AdminService interface {
	Login(ctx context.Context, input models.LoginInput) (*models.Admin, string, error)
	Logout(ctx context.Context, adminID string) error

	ListPendingMentors(ctx context.Context) ([]models.Mentor, error)
	ApproveMentor(ctx context.Context, mentorID string) (*models.Mentor, error)

	// RemoveMentor deletes an approved mentor's account. Unapproved
	// applicants stay in the approval queue and cannot be deleted this way.
	RemoveMentor(ctx context.Context, mentorID string) error

	ListMentors(ctx context.Context) ([]models.Mentor, error)
	ListMentees(ctx context.Context) ([]models.Mentee, error)
}
