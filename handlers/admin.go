package handlers

import (
	"mentorify/models"
	"mentorify/services/admin"
	"mentorify/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin console endpoints.
type AdminHandler struct {
	admins admin.AdminService
}

func NewAdminHandler(admins admin.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if !bindJSON(c, &input) {
		return
	}
	account, token, err := h.admins.Login(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, gin.H{"admin": account, "token": token})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.admins.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, gin.H{"message": "logged out"})
}

func (h *AdminHandler) PendingMentors(c *gin.Context) {
	mentors, err := h.admins.ListPendingMentors(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, mentors)
}

func (h *AdminHandler) ApproveMentor(c *gin.Context) {
	mentor, err := h.admins.ApproveMentor(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, mentor)
}

func (h *AdminHandler) RemoveMentor(c *gin.Context) {
	if err := h.admins.RemoveMentor(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, gin.H{"message": "mentor removed"})
}

func (h *AdminHandler) Mentors(c *gin.Context) {
	mentors, err := h.admins.ListMentors(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, mentors)
}

func (h *AdminHandler) Mentees(c *gin.Context) {
	mentees, err := h.admins.ListMentees(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, mentees)
}
