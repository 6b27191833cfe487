package middleware

import (
	"net/http"
	"strings"

	adminRepo "mentorify/database/repository/admin"
	menteeRepo "mentorify/database/repository/mentee"
	mentorRepo "mentorify/database/repository/mentor"
	"mentorify/models"
	"mentorify/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "userId"
	ContextRole   = "role"
)

// AuthMiddleware authenticates requests per principal role. A token is valid
// only while its hash matches the one stored on the account, so logout and
// re-login revoke every earlier token.
type AuthMiddleware struct {
	mentees menteeRepo.MenteeRepository
	mentors mentorRepo.MentorRepository
	admins  adminRepo.AdminRepository
}

func NewAuthMiddleware(
	mentees menteeRepo.MenteeRepository,
	mentors mentorRepo.MentorRepository,
	admins adminRepo.AdminRepository,
) *AuthMiddleware {
	return &AuthMiddleware{mentees: mentees, mentors: mentors, admins: admins}
}

func (m *AuthMiddleware) RequireMentee() gin.HandlerFunc {
	return m.require(models.RoleMentee)
}

func (m *AuthMiddleware) RequireMentor() gin.HandlerFunc {
	return m.require(models.RoleMentor)
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.require(models.RoleAdmin)
}

func (m *AuthMiddleware) require(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing or malformed Authorization header")
			c.Abort()
			return
		}

		id, tokenRole, err := utils.TokenPrincipal(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		if tokenRole != role {
			utils.JSONError(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		hash := utils.HashToken(token)
		if cached, ok := utils.CachedTokenHash(role, id); ok {
			if cached != hash {
				utils.JSONError(c, http.StatusUnauthorized, "token has been revoked")
				c.Abort()
				return
			}
		} else if m.tokenCurrent(c, role, id, hash) {
			utils.CacheTokenHash(role, id, hash)
		} else {
			utils.JSONError(c, http.StatusUnauthorized, "token has been revoked")
			c.Abort()
			return
		}

		c.Set(ContextUserID, id)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// tokenCurrent reports whether the presented token is still the account's
// active one.
func (m *AuthMiddleware) tokenCurrent(c *gin.Context, role, id, tokenHash string) bool {
	ctx := c.Request.Context()
	switch role {
	case models.RoleMentee:
		mentee, err := m.mentees.GetByTokenHash(ctx, tokenHash)
		return err == nil && mentee != nil && mentee.ID == id
	case models.RoleMentor:
		mentor, err := m.mentors.GetByTokenHash(ctx, tokenHash)
		return err == nil && mentor != nil && mentor.ID == id
	case models.RoleAdmin:
		admin, err := m.admins.GetByTokenHash(ctx, tokenHash)
		return err == nil && admin != nil && admin.ID == id
	}
	return false
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
