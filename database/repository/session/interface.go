package sessionRepo

import (
	"context"

	"mentorify/models"
)

// SessionRepository is the booking ledger. UpdateStatus is the sole mutator
// of a session's lifecycle state; callers supply the allowed transition and
// the update is compare-and-swap on the expected current status.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)

	// FindConflicting returns a session holding the exact (mentorId, date,
	// timeSlot) tuple in one of the given statuses, or nil.
	FindConflicting(ctx context.Context, mentorID, date, timeSlot string, statuses []string) (*models.Session, error)

	// FindActiveForMentee returns any session for the mentee in one of the
	// given statuses, or nil.
	FindActiveForMentee(ctx context.Context, menteeID string, statuses []string) (*models.Session, error)

	// FindUpcomingForSlot returns a session dated fromDate-or-later that
	// references the (mentorId, day, timeSlot) template entry in one of the
	// given statuses, or nil. Used to guard template edits.
	FindUpcomingForSlot(ctx context.Context, mentorID, day, timeSlot, fromDate string, statuses []string) (*models.Session, error)

	// UpdateStatus transitions the session to next if its current status is
	// one of expected. Returns the updated session, or nil when no session
	// matched (absent or already transitioned).
	UpdateStatus(ctx context.Context, id string, expected []string, next string) (*models.Session, error)

	SetMeetingLink(ctx context.Context, id, link string) error
	AttachReview(ctx context.Context, sessionID, reviewID string) error

	// ListForMentee / ListForMentor return dashboard views filtered by status.
	// fromDate, when non-empty, restricts to sessions dated fromDate or later
	// and sorts ascending; otherwise history is sorted descending.
	ListForMentee(ctx context.Context, menteeID string, statuses []string, fromDate string) ([]models.Session, error)
	ListForMentor(ctx context.Context, mentorID string, statuses []string, fromDate string) ([]models.Session, error)

	// ListPendingBefore returns pending sessions dated strictly before the
	// given date, for the expiry sweep.
	ListPendingBefore(ctx context.Context, date string) ([]models.Session, error)
	// ListPendingOn returns pending sessions dated exactly on the given date.
	ListPendingOn(ctx context.Context, date string) ([]models.Session, error)
}
