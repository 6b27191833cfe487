package models

import (
	"math"
	"time"
)

// RatingSummary is the mentor's denormalized review aggregate. It is mutated
// incrementally by the review submission path, never recomputed from the
// review collection.
type RatingSummary struct {
	Average      float64 `bson:"average" json:"average"`
	TotalReviews int     `bson:"totalReviews" json:"totalReviews"`
	FiveStars    int     `bson:"fiveStars" json:"fiveStars"`
	FourStars    int     `bson:"fourStars" json:"fourStars"`
	ThreeStars   int     `bson:"threeStars" json:"threeStars"`
	TwoStars     int     `bson:"twoStars" json:"twoStars"`
	OneStars     int     `bson:"oneStars" json:"oneStars"`
}

// Apply folds one rating into the summary: bump the star bucket and the
// total, then recompute the weighted average rounded to 2 decimals. This is
// the contract the storage-layer update pipeline implements; out-of-range
// ratings are ignored.
func (r *RatingSummary) Apply(rating int) {
	switch rating {
	case 5:
		r.FiveStars++
	case 4:
		r.FourStars++
	case 3:
		r.ThreeStars++
	case 2:
		r.TwoStars++
	case 1:
		r.OneStars++
	default:
		return
	}
	r.TotalReviews++
	sum := 5*r.FiveStars + 4*r.FourStars + 3*r.ThreeStars + 2*r.TwoStars + r.OneStars
	r.Average = math.Round(float64(sum)/float64(r.TotalReviews)*100) / 100
}

// Mentor represents a mentor account. New mentors start unapproved and are
// hidden from mentees until an admin approves them.
type Mentor struct {
	ID              string        `bson:"id" json:"id"`
	Name            string        `bson:"name" json:"name"`
	Email           string        `bson:"email" json:"email"`
	PasswordHash    string        `bson:"passwordHash" json:"-"`
	ProfilePicture  string        `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Experience      string        `bson:"experience" json:"experience"`
	CurrentPosition string        `bson:"currentPosition" json:"currentPosition"`
	Approved        bool          `bson:"approved" json:"approved"`
	Role            string        `bson:"role" json:"role"`
	Rating          RatingSummary `bson:"rating" json:"rating"`
	TokenHash       string        `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}
