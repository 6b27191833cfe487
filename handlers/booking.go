package handlers

import (
	"mentorify/models"
	"mentorify/services/booking"
	"mentorify/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the session lifecycle endpoints.
type BookingHandler struct {
	bookings booking.BookingService
}

func NewBookingHandler(bookings booking.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Book places a session request. Mentee-only.
func (h *BookingHandler) Book(c *gin.Context) {
	var input models.BookSessionInput
	if !bindJSON(c, &input) {
		return
	}
	session, err := h.bookings.Book(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	created(c, session)
}

// Accept confirms a pending request. Mentor-only.
func (h *BookingHandler) Accept(c *gin.Context) {
	session, err := h.bookings.Accept(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, session)
}

// Cancel terminates an active session for either party.
func (h *BookingHandler) Cancel(c *gin.Context) {
	session, err := h.bookings.Cancel(c.Request.Context(), currentUserID(c), currentRole(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, session)
}

// Complete marks a confirmed session as held. Mentor-only.
func (h *BookingHandler) Complete(c *gin.Context) {
	session, err := h.bookings.Complete(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, session)
}

// SetMeetingLink attaches the meeting URL to a confirmed session. Mentor-only.
func (h *BookingHandler) SetMeetingLink(c *gin.Context) {
	var input models.MeetingLinkInput
	if !bindJSON(c, &input) {
		return
	}
	session, err := h.bookings.AddMeetingLink(c.Request.Context(), currentUserID(c), c.Param("id"), input.MeetingLink)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, session)
}

// MeetingLink returns the meeting URL to the session's mentee.
func (h *BookingHandler) MeetingLink(c *gin.Context) {
	link, err := h.bookings.GetMeetingLink(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, gin.H{"meetingLink": link})
}

// MenteeDashboard returns the mentee's pending, upcoming and past sessions.
func (h *BookingHandler) MenteeDashboard(c *gin.Context) {
	dashboard, err := h.bookings.MenteeDashboard(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, dashboard)
}

// MentorDashboard returns the mentor's pending, upcoming and past sessions.
func (h *BookingHandler) MentorDashboard(c *gin.Context) {
	dashboard, err := h.bookings.MentorDashboard(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, dashboard)
}
