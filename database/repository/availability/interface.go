package availabilityRepo

import (
	"context"

	"mentorify/models"
)

// AvailabilityRepository stores per-mentor weekly availability templates and
// the per-date booking markers on their slots.
type AvailabilityRepository interface {
	// Create inserts a template. ErrTemplateExists is returned when the
	// mentor already has one.
	Create(ctx context.Context, availability *models.MentorAvailability) error

	GetByMentorID(ctx context.Context, mentorID string) (*models.MentorAvailability, error)

	// Replace overwrites the template wholesale. Booking markers on the new
	// slot set are not preserved; callers must have verified no live session
	// still references a removed or changed slot.
	Replace(ctx context.Context, availability *models.MentorAvailability) error

	// MarkSlotBooked records an active booking of (day, timeSlot) on the
	// given date so template edits can detect the conflict.
	MarkSlotBooked(ctx context.Context, mentorID, day, timeSlot, date string) error

	// ClearSlotBooking releases the per-date booking marker, returning the
	// slot to available for that date.
	ClearSlotBooking(ctx context.Context, mentorID, day, timeSlot, date string) error
}
