package routes

import (
	"net/http"
	"time"

	"mentorify/handlers"
	"mentorify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries every handler the router needs.
type HandlerBundle struct {
	Mentees      *handlers.MenteeHandler
	Mentors      *handlers.MentorHandler
	Availability *handlers.AvailabilityHandler
	Bookings     *handlers.BookingHandler
	Reviews      *handlers.ReviewHandler
	Admins       *handlers.AdminHandler
	Auth         *middleware.AuthMiddleware
}

// SetupRoutes registers every endpoint on the engine.
func SetupRoutes(r *gin.Engine, b HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimiter())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public surface: signup, login and mentor browsing.
	mentees := api.Group("/mentees")
	{
		mentees.POST("/otp", b.Mentees.SendOTP)
		mentees.POST("/signup", b.Mentees.Signup)
		mentees.POST("/login", b.Mentees.Login)
	}

	mentors := api.Group("/mentors")
	{
		mentors.POST("/signup", b.Mentors.Signup)
		mentors.POST("/login", b.Mentors.Login)
		mentors.GET("", b.Mentors.List)
		mentors.GET("/:id", b.Mentors.PublicProfile)
		mentors.GET("/:id/availability", b.Availability.ByMentor)
		mentors.GET("/:id/reviews", b.Mentors.Reviews)
	}

	admins := api.Group("/admin")
	{
		admins.POST("/login", b.Admins.Login)
	}

	// Mentee surface.
	menteeAuth := api.Group("/mentees", b.Auth.RequireMentee())
	{
		menteeAuth.POST("/logout", b.Mentees.Logout)
		menteeAuth.GET("/me", b.Mentees.Profile)
		menteeAuth.GET("/me/dashboard", b.Bookings.MenteeDashboard)
	}
	menteeSessions := api.Group("/sessions", b.Auth.RequireMentee())
	{
		menteeSessions.POST("", b.Bookings.Book)
		menteeSessions.POST("/:id/cancel", b.Bookings.Cancel)
		menteeSessions.GET("/:id/meeting-link", b.Bookings.MeetingLink)
		menteeSessions.GET("/:id/review", b.Reviews.BySession)
	}
	menteeReviews := api.Group("/reviews", b.Auth.RequireMentee())
	{
		menteeReviews.POST("", b.Reviews.Submit)
	}

	// Mentor surface. Lives under /mentor to keep the public /mentors/:id
	// wildcard free of conflicts.
	mentorAuth := api.Group("/mentor/me", b.Auth.RequireMentor())
	{
		mentorAuth.GET("", b.Mentors.Profile)
		mentorAuth.PUT("", b.Mentors.UpdateProfile)
		mentorAuth.POST("/logout", b.Mentors.Logout)
		mentorAuth.POST("/picture", b.Mentors.UploadPicture)
		mentorAuth.POST("/availability", b.Availability.Create)
		mentorAuth.PUT("/availability", b.Availability.Replace)
		mentorAuth.GET("/availability", b.Availability.Own)
		mentorAuth.GET("/dashboard", b.Bookings.MentorDashboard)
	}
	mentorSessions := api.Group("/mentor/sessions", b.Auth.RequireMentor())
	{
		mentorSessions.POST("/:id/accept", b.Bookings.Accept)
		mentorSessions.POST("/:id/cancel", b.Bookings.Cancel)
		mentorSessions.POST("/:id/complete", b.Bookings.Complete)
		mentorSessions.PUT("/:id/meeting-link", b.Bookings.SetMeetingLink)
	}

	// Admin surface.
	adminAuth := api.Group("/admin", b.Auth.RequireAdmin())
	{
		adminAuth.POST("/logout", b.Admins.Logout)
		adminAuth.GET("/mentors", b.Admins.Mentors)
		adminAuth.GET("/mentors/pending", b.Admins.PendingMentors)
		adminAuth.POST("/mentors/:id/approve", b.Admins.ApproveMentor)
		adminAuth.DELETE("/mentors/:id", b.Admins.RemoveMentor)
		adminAuth.GET("/mentees", b.Admins.Mentees)
	}
}
