package cron

import (
	"context"
	"fmt"

	"mentorify/config"
	"mentorify/services/booking"
	"mentorify/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskSessionSweep cancels pending session requests whose slot has passed.
const TaskSessionSweep = "session:sweep"

// SweepWorker runs the periodic session expiry sweep on an asynq queue.
type SweepWorker struct {
	bookings  booking.BookingService
	server    *asynq.Server
	scheduler *asynq.Scheduler
}

func NewSweepWorker(bookings booking.BookingService) *SweepWorker {
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	server := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 1})
	scheduler := asynq.NewScheduler(redisOpt, nil)
	return &SweepWorker{bookings: bookings, server: server, scheduler: scheduler}
}

// Start registers the hourly sweep and launches the queue worker.
func (w *SweepWorker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskSessionSweep, w.handleSweep)

	if _, err := w.scheduler.Register("@hourly", asynq.NewTask(TaskSessionSweep, nil)); err != nil {
		return fmt.Errorf("failed to register sweep schedule: %w", err)
	}
	if err := w.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	if err := w.server.Start(mux); err != nil {
		return fmt.Errorf("failed to start queue worker: %w", err)
	}
	utils.GetLogger().Info("session sweep worker started", zap.String("schedule", "@hourly"))
	return nil
}

// Stop drains the scheduler and worker.
func (w *SweepWorker) Stop() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

func (w *SweepWorker) handleSweep(ctx context.Context, _ *asynq.Task) error {
	cancelled, err := w.bookings.SweepExpiredSessions(ctx)
	if err != nil {
		utils.GetLogger().Error("session sweep failed", zap.Error(err))
		return err
	}
	utils.GetLogger().Info("session sweep finished", zap.Int("cancelled", cancelled))
	return nil
}
