package booking

import (
	"context"

	"mentorify/models"
)

// Dashboard is the per-user session view: open requests, confirmed upcoming
// sessions and finished history.
type Dashboard struct {
	Pending  []models.Session `json:"pending"`
	Upcoming []models.Session `json:"upcoming"`
	History  []models.Session `json:"history"`
}

// BookingService drives the session lifecycle from request to completion.
type BookingService interface {
	// Book places a pending session request against a mentor's published slot.
	Book(ctx context.Context, menteeID string, input models.BookSessionInput) (*models.Session, error)

	// Accept confirms a pending request. Mentor-only.
	Accept(ctx context.Context, mentorID, sessionID string) (*models.Session, error)

	// Cancel terminates a pending or confirmed session. Either party may
	// cancel their own session.
	Cancel(ctx context.Context, actorID, actorRole, sessionID string) (*models.Session, error)

	// Complete marks a confirmed session as held. Mentor-only, and rejected
	// until the slot's end time has passed.
	Complete(ctx context.Context, mentorID, sessionID string) (*models.Session, error)

	AddMeetingLink(ctx context.Context, mentorID, sessionID, link string) (*models.Session, error)
	GetMeetingLink(ctx context.Context, menteeID, sessionID string) (string, error)

	MenteeDashboard(ctx context.Context, menteeID string) (*Dashboard, error)
	MentorDashboard(ctx context.Context, mentorID string) (*Dashboard, error)

	// SweepExpiredSessions cancels pending requests whose slot has passed
	// unanswered. Returns the number of sessions cancelled.
	SweepExpiredSessions(ctx context.Context) (int, error)
}
