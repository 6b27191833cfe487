package handlers

import (
	"mentorify/models"
	"mentorify/services/availability"
	"mentorify/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the weekly availability template endpoints.
type AvailabilityHandler struct {
	availability availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: svc}
}

// Create stores the authenticated mentor's first template.
func (h *AvailabilityHandler) Create(c *gin.Context) {
	var input models.SetAvailabilityInput
	if !bindJSON(c, &input) {
		return
	}
	tpl, err := h.availability.CreateAvailability(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	created(c, tpl)
}

// Replace swaps the authenticated mentor's template for a new one.
func (h *AvailabilityHandler) Replace(c *gin.Context) {
	var input models.SetAvailabilityInput
	if !bindJSON(c, &input) {
		return
	}
	tpl, err := h.availability.ReplaceAvailability(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, tpl)
}

// Own returns the authenticated mentor's template.
func (h *AvailabilityHandler) Own(c *gin.Context) {
	tpl, err := h.availability.GetAvailability(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, tpl)
}

// ByMentor returns a mentor's template for mentees planning a booking.
func (h *AvailabilityHandler) ByMentor(c *gin.Context) {
	tpl, err := h.availability.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	ok(c, tpl)
}
