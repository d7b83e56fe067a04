package scheduler

import (
	"context"
	"fmt"
	"log"

	"CalendarBot/internal/runner"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily calendar pipeline on a cron spec.
type Scheduler struct {
	Cron   *cron.Cron
	Runner *runner.Runner
	Ctx    context.Context
}

// NewScheduler creates a Scheduler with seconds-precision cron specs.
func NewScheduler(ctx context.Context, r *runner.Runner) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Runner: r,
		Ctx:    ctx,
	}
}

// Register registers the daily calendar task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily calendar task")
	if code := s.Runner.Run(s.Ctx, runner.Options{}); code != 0 {
		log.Printf("[ERROR] daily calendar task failed (exit code %d)", code)
	}
}
