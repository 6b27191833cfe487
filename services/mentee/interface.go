package mentee

import (
	"context"

	"mentorify/models"
)

// MenteeService handles mentee registration and authentication. Signup is
// gated on an emailed OTP so accounts always carry a reachable address.
type MenteeService interface {
	// SendSignupOTP emails a short-lived verification code to an
	// unregistered address.
	SendSignupOTP(ctx context.Context, email string) error

	// Signup registers the mentee once the OTP checks out and returns the
	// account with a session token.
	Signup(ctx context.Context, input models.MenteeSignupInput) (*models.Mentee, string, error)

	// Login verifies credentials and returns the account with a fresh token.
	// Any previously issued token is invalidated.
	Login(ctx context.Context, input models.LoginInput) (*models.Mentee, string, error)

	// Logout revokes the mentee's current token.
	Logout(ctx context.Context, menteeID string) error

	GetProfile(ctx context.Context, menteeID string) (*models.Mentee, error)
}
