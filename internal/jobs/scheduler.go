// Package jobs runs the periodic background work: rate table refreshes and expiry scans.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/teminat_takip/internal/middleware"
	"github.com/robfig/cron/v3"
)

// DefaultJobTimeout bounds a single job run.
const DefaultJobTimeout = 2 * time.Minute

// Job is one unit of scheduled work.
type Job func(ctx context.Context) error

// Scheduler wraps a cron instance and gives every run its own logger and deadline.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	timeout time.Duration
}

// SchedulerOption is a functional option for configuring the scheduler
type SchedulerOption func(*Scheduler)

// WithJobTimeout overrides DefaultJobTimeout.
func WithJobTimeout(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewScheduler creates a scheduler accepting standard 5-field specs and descriptors like "@every 5m".
// Overlapping runs of the same job are skipped and panics are recovered.
func NewScheduler(logger *slog.Logger, opts ...SchedulerOption) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	cl := cronLogger{logger: logger.With(slog.String("component", "cron"))}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger:  logger,
		timeout: DefaultJobTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register schedules job under name. An empty spec disables the job.
func (s *Scheduler) Register(name, spec string, job Job) error {
	if spec == "" {
		s.logger.Info("Scheduled job disabled", slog.String("job", name))
		return nil
	}
	if _, err := s.cron.AddFunc(spec, func() { s.Run(name, job) }); err != nil {
		return fmt.Errorf("failed to schedule job %s with spec %q: %w", name, spec, err)
	}
	s.logger.Info("Scheduled job registered", slog.String("job", name), slog.String("spec", spec))
	return nil
}

// Run executes job once with a job-scoped logger and the scheduler's timeout.
func (s *Scheduler) Run(name string, job Job) {
	logger := s.logger.With(slog.String("job", name))
	ctx, cancel := context.WithTimeout(middleware.WithLogger(context.Background(), logger), s.timeout)
	defer cancel()

	start := time.Now()
	if err := job(ctx); err != nil {
		logger.Error("Scheduled job failed", slog.String("error", err.Error()), slog.Duration("duration", time.Since(start)))
		return
	}
	logger.Debug("Scheduled job finished", slog.Duration("duration", time.Since(start)))
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler did not stop in time: %w", ctx.Err())
	}
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	args := append([]any{slog.Any("error", err)}, keysAndValues...)
	l.logger.Error(msg, args...)
}
