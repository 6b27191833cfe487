package models

import "time"

// Review is a mentee's rating of one completed session. One review per
// session; immutable once created.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	MenteeID  string    `bson:"menteeId" json:"menteeId"`
	MentorID  string    `bson:"mentorId" json:"mentorId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
