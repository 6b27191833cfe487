package handlers

import (
	"mentorify/models"
	"mentorify/services/mentee"
	"mentorify/utils"

	"github.com/gin-gonic/gin"
)

// MenteeHandler exposes mentee registration and authentication endpoints.
type MenteeHandler struct {
	mentees mentee.MenteeService
}

func NewMenteeHandler(mentees mentee.MenteeService) *MenteeHandler {
	return &MenteeHandler{mentees: mentees}
}

func (h *MenteeHandler) SendOTP(c *gin.Context) {
	var input models.SendOTPInput
	if !bindJSON(c, &input) {
		return
	}
	if err := h.mentees.SendSignupOTP(c.Request.Context(), input.Email); err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, gin.H{"message": "verification code sent"})
}

func (h *MenteeHandler) Signup(c *gin.Context) {
	var input models.MenteeSignupInput
	if !bindJSON(c, &input) {
		return
	}
	account, token, err := h.mentees.Signup(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	created(c, gin.H{"mentee": account, "token": token})
}

func (h *MenteeHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if !bindJSON(c, &input) {
		return
	}
	account, token, err := h.mentees.Login(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, gin.H{"mentee": account, "token": token})
}

func (h *MenteeHandler) Logout(c *gin.Context) {
	if err := h.mentees.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, gin.H{"message": "logged out"})
}

func (h *MenteeHandler) Profile(c *gin.Context) {
	account, err := h.mentees.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, account)
}
