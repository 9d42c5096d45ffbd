package scheduler

import (
	"context"
	"errors"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/ArthurHoang15/notification-server/internal/sweep"
)

// Scheduler fires one sweep per wall-clock minute. Overlap protection
// lives inside the sweeper so the manual HTTP trigger shares it; a
// tick that finds a sweep still running is skipped with a warning.
type Scheduler struct {
	cron    gocron.Scheduler
	sweeper *sweep.Sweeper
	log     *zap.Logger
}

func New(sweeper *sweep.Sweeper, log *zap.Logger) (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	s := &Scheduler{cron: cron, sweeper: sweeper, log: log}

	// Cron cadence aligns ticks to minute boundaries, which the
	// HH:MM equality match depends on.
	_, err = cron.NewJob(
		gocron.CronJob("* * * * *", false),
		gocron.NewTask(s.tick),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins firing ticks. Non-blocking.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", zap.String("cadence", "every minute"))
}

// Shutdown stops the cron loop. A sweep already in flight finishes on
// its own; new ticks stop firing.
func (s *Scheduler) Shutdown() error {
	s.log.Info("scheduler stopping")
	return s.cron.Shutdown()
}

func (s *Scheduler) tick() {
	_, err := s.sweeper.Sweep(context.Background())
	if errors.Is(err, sweep.ErrSweepInProgress) {
		s.log.Warn("tick skipped: previous sweep still running")
	}
}
