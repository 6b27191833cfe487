package models

import "time"

// Session lifecycle states. Completed and cancelled are terminal.
const (
	SessionPending   = "pending"
	SessionConfirmed = "confirmed"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// ActiveStatuses are the states that hold a slot reservation.
var ActiveStatuses = []string{SessionPending, SessionConfirmed}

// Session represents one booking record in the ledger.
// Date is a concrete calendar date in "2006-01-02" form whose weekday must
// equal Day; TimeSlot is the slot label "<start> - <end>" from the mentor's
// template for that day.
type Session struct {
	ID          string    `bson:"id" json:"id"`
	MentorID    string    `bson:"mentorId" json:"mentorId"`
	MenteeID    string    `bson:"menteeId" json:"menteeId"`
	Day         string    `bson:"day" json:"day"`
	Date        string    `bson:"date" json:"date"`
	TimeSlot    string    `bson:"timeSlot" json:"timeSlot"`
	Message     string    `bson:"message,omitempty" json:"message,omitempty"`
	Status      string    `bson:"status" json:"status"`
	MeetingLink string    `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	ReviewID    string    `bson:"reviewId,omitempty" json:"reviewId,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsActive reports whether the session currently holds its slot.
func (s *Session) IsActive() bool {
	return s.Status == SessionPending || s.Status == SessionConfirmed
}
