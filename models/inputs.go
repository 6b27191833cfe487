package models

// BookSessionInput is the validated payload for booking a session.
type BookSessionInput struct {
	MentorID string `json:"mentorId" binding:"required"`
	Day      string `json:"day" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
	Message  string `json:"message"`
}

// SetAvailabilityInput is the payload for creating or replacing a mentor's
// weekly availability template.
type SetAvailabilityInput struct {
	AvailableDays []string   `json:"availableDays" binding:"required"`
	SlotsPerDay   []DaySlots `json:"slotsPerDay" binding:"required"`
}

// SubmitReviewInput is the payload for reviewing a completed session.
type SubmitReviewInput struct {
	SessionID string `json:"sessionId" binding:"required"`
	MentorID  string `json:"mentorId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

// MeetingLinkInput attaches a meeting link to a confirmed session.
type MeetingLinkInput struct {
	MeetingLink string `json:"meetingLink" binding:"required"`
}

// SendOTPInput requests a signup verification code.
type SendOTPInput struct {
	Email string `json:"email" binding:"required"`
}

// MenteeSignupInput registers a mentee once the emailed OTP is known.
type MenteeSignupInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	OTP             string `json:"otp" binding:"required"`
}

// MentorSignupInput registers a mentor pending admin approval.
type MentorSignupInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	Experience      string `json:"experience" binding:"required"`
	CurrentPosition string `json:"currentPosition" binding:"required"`
}

// LoginInput carries credentials for any principal type.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateMentorProfileInput carries the mutable mentor profile fields.
type UpdateMentorProfileInput struct {
	Name            string `json:"name"`
	ProfilePicture  string `json:"profilePicture"`
	Experience      string `json:"experience"`
	CurrentPosition string `json:"currentPosition"`
}
