package availability

import (
	"context"

	"mentorify/models"
)

// AvailabilityService manages mentors' weekly availability templates.
type AvailabilityService interface {
	// CreateAvailability stores the mentor's first template. It fails with a
	// conflict when the mentor already has one; use ReplaceAvailability then.
	CreateAvailability(ctx context.Context, mentorID string, input models.SetAvailabilityInput) (*models.MentorAvailability, error)

	// ReplaceAvailability swaps the mentor's template for a new one, resetting
	// every per-date booking marker. It is rejected with a conflict when a
	// live upcoming session still references a slot the new template drops.
	ReplaceAvailability(ctx context.Context, mentorID string, input models.SetAvailabilityInput) (*models.MentorAvailability, error)

	// GetAvailability returns the mentor's template, or a not-found error.
	GetAvailability(ctx context.Context, mentorID string) (*models.MentorAvailability, error)
}
