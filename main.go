package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentorify/config"
	"mentorify/cron"
	"mentorify/database"
	adminRepo "mentorify/database/repository/admin"
	availabilityRepo "mentorify/database/repository/availability"
	menteeRepo "mentorify/database/repository/mentee"
	mentorRepo "mentorify/database/repository/mentor"
	reviewRepo "mentorify/database/repository/review"
	sessionRepo "mentorify/database/repository/session"
	"mentorify/handlers"
	"mentorify/middleware"
	"mentorify/routes"
	"mentorify/services/admin"
	"mentorify/services/availability"
	"mentorify/services/booking"
	"mentorify/services/mentee"
	"mentorify/services/mentor"
	"mentorify/services/notification"
	"mentorify/services/review"
	"mentorify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitRedis()

	// Repositories.
	sessions := sessionRepo.NewMongoSessionRepo()
	availabilities := availabilityRepo.NewMongoAvailabilityRepo()
	reviews := reviewRepo.NewMongoReviewRepo()
	mentors := mentorRepo.NewMongoMentorRepo()
	mentees := menteeRepo.NewMongoMenteeRepo()
	admins := adminRepo.NewMongoAdminRepo()

	// Shared infrastructure.
	notifier := notification.NewSMTPNotifier()
	storage, err := utils.NewCloudinaryStorage()
	if err != nil {
		logger.Fatal("failed to initialize cloudinary", zap.Error(err))
	}

	// Services.
	bookingSvc := booking.NewBookingService(sessions, availabilities, mentors, mentees, notifier, nil)
	availabilitySvc := availability.NewAvailabilityService(availabilities, sessions, nil)
	reviewSvc := review.NewReviewService(reviews, sessions, mentors)
	menteeSvc := mentee.NewMenteeService(mentees, notifier)
	mentorSvc := mentor.NewMentorService(mentors, storage)
	adminSvc := admin.NewAdminService(admins, mentors, mentees, notifier)

	// HTTP surface.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())

	routes.SetupRoutes(r, routes.HandlerBundle{
		Mentees:      handlers.NewMenteeHandler(menteeSvc),
		Mentors:      handlers.NewMentorHandler(mentorSvc, reviewSvc),
		Availability: handlers.NewAvailabilityHandler(availabilitySvc),
		Bookings:     handlers.NewBookingHandler(bookingSvc),
		Reviews:      handlers.NewReviewHandler(reviewSvc),
		Admins:       handlers.NewAdminHandler(adminSvc),
		Auth:         middleware.NewAuthMiddleware(mentees, mentors, admins),
	})

	// Background sweep of expired pending sessions.
	sweeper := cron.NewSweepWorker(bookingSvc)
	if err := sweeper.Start(); err != nil {
		logger.Fatal("failed to start sweep worker", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("failed to disconnect mongo", zap.Error(err))
	}
	logger.Info("server stopped")
}
