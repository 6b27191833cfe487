package mentor

import (
	"context"
	"mime/multipart"

	"mentorify/models"
)

// PictureStorage uploads profile images and returns their permanent URLs.
type PictureStorage interface {
	UploadProfilePicture(ctx context.Context, file multipart.File, folder string) (string, error)
}

// MentorService handles mentor accounts. New mentors stay unapproved and
// cannot log in or appear in listings until an admin approves them.
type MentorService interface {
	// Signup registers a mentor application. No token is issued; the account
	// becomes usable only after admin approval.
	Signup(ctx context.Context, input models.MentorSignupInput) (*models.Mentor, error)

	// Login verifies credentials for an approved mentor and returns a fresh
	// token. Unapproved mentors are rejected.
	Login(ctx context.Context, input models.LoginInput) (*models.Mentor, string, error)

	// Logout revokes the mentor's current token.
	Logout(ctx context.Context, mentorID string) error

	GetProfile(ctx context.Context, mentorID string) (*models.Mentor, error)
	UpdateProfile(ctx context.Context, mentorID string, input models.UpdateMentorProfileInput) (*models.Mentor, error)
	UploadProfilePicture(ctx context.Context, mentorID string, file multipart.File) (string, error)

	// ListApproved returns the approved mentors mentees can browse.
	ListApproved(ctx context.Context) ([]models.Mentor, error)
}
