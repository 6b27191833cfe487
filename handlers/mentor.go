package handlers

import (
	"net/http"

	"mentorify/models"
	"mentorify/services/mentor"
	"mentorify/services/review"
	"mentorify/utils"

	"github.com/gin-gonic/gin"
)

// MentorHandler exposes mentor account endpoints plus the public mentor
// browse surface.
type MentorHandler struct {
	mentors mentor.MentorService
	reviews review.ReviewService
}

func NewMentorHandler(mentors mentor.MentorService, reviews review.ReviewService) *MentorHandler {
	return &MentorHandler{mentors: mentors, reviews: reviews}
}

func (h *MentorHandler) Signup(c *gin.Context) {
	var input models.MentorSignupInput
	if !bindJSON(c, &input) {
		return
	}
	account, err := h.mentors.Signup(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	created(c, gin.H{
		"mentor":  account,
		"message": "application received, awaiting admin approval",
	})
}

func (h *MentorHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if !bindJSON(c, &input) {
		return
	}
	account, token, err := h.mentors.Login(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, gin.H{"mentor": account, "token": token})
}

func (h *MentorHandler) Logout(c *gin.Context) {
	if err := h.mentors.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, gin.H{"message": "logged out"})
}

func (h *MentorHandler) Profile(c *gin.Context) {
	account, err := h.mentors.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, account)
}

func (h *MentorHandler) UpdateProfile(c *gin.Context) {
	var input models.UpdateMentorProfileInput
	if !bindJSON(c, &input) {
		return
	}
	account, err := h.mentors.UpdateProfile(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, account)
}

func (h *MentorHandler) UploadPicture(c *gin.Context) {
	file, _, err := c.Request.FormFile("picture")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "picture file is required")
		return
	}
	defer file.Close()

	url, err := h.mentors.UploadProfilePicture(c.Request.Context(), currentUserID(c), file)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, gin.H{"profilePicture": url})
}

// List returns the approved mentors mentees can browse.
func (h *MentorHandler) List(c *gin.Context) {
	mentors, err := h.mentors.ListApproved(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, mentors)
}

// PublicProfile returns one approved mentor's profile.
func (h *MentorHandler) PublicProfile(c *gin.Context) {
	account, err := h.mentors.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !account.Approved {
		utils.RespondError(c, utils.Errf(utils.CodeNotFound, "mentor %s not found", c.Param("id")))
		return
	}
	ok(c, account)
}

// Reviews returns the reviews left on a mentor, newest first.
func (h *MentorHandler) Reviews(c *gin.Context) {
	reviews, err := h.reviews.ListMentorReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, reviews)
}
