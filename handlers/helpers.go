package handlers

import (
	"net/http"

	"mentorify/middleware"
	"mentorify/utils"

	"github.com/gin-gonic/gin"
)

// currentUserID returns the authenticated principal's id set by the auth
// middleware.
func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

func currentRole(c *gin.Context) string {
	return c.GetString(middleware.ContextRole)
}

// bindJSON binds the request body, responding with a classified error on
// failure. Returns false when the request was already answered.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		utils.RespondError(c, utils.Errf(utils.CodeInvalidInput, "invalid request body: %v", err))
		return false
	}
	return true
}

func ok(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
