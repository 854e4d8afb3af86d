package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/laiwenqiang/vps-stock-monitor/internal/metrics"
)

// Scheduler manages periodic check cycles and history pruning.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger

	jobTimeout   time.Duration
	checkEntryID cron.EntryID
	pruneEntryID cron.EntryID
}

// NewScheduler creates a Scheduler that runs a check cycle every
// checkInterval and prunes history every pruneInterval. A zero
// pruneInterval disables pruning.
func NewScheduler(
	eng *Engine,
	checkInterval time.Duration,
	pruneInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if checkInterval <= 0 {
		return nil, fmt.Errorf("check interval must be positive, got %s", checkInterval)
	}

	c := cron.New()

	s := &Scheduler{
		cron:       c,
		engine:     eng,
		log:        log,
		jobTimeout: checkInterval,
	}

	id, err := c.AddFunc("@every "+checkInterval.String(), s.runChecks)
	if err != nil {
		return nil, err
	}
	s.checkEntryID = id

	if pruneInterval > 0 {
		id, err := c.AddFunc("@every "+pruneInterval.String(), s.runPrune)
		if err != nil {
			return nil, err
		}
		s.pruneEntryID = id
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next run of each job as a gauge.
func (s *Scheduler) SyncNextRunTimestamps() {
	if e := s.cron.Entry(s.checkEntryID); !e.Next.IsZero() {
		metrics.SchedulerNextCheckTimestamp.Set(float64(e.Next.Unix()))
	}
	if s.pruneEntryID == 0 {
		return
	}
	if e := s.cron.Entry(s.pruneEntryID); !e.Next.IsZero() {
		metrics.SchedulerNextPruneTimestamp.Set(float64(e.Next.Unix()))
	}
}

func (s *Scheduler) runChecks() {
	defer s.SyncNextRunTimestamps()

	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	s.log.Info("scheduled check cycle starting")
	summary, err := s.engine.RunChecks(ctx)
	if err != nil {
		s.log.Error("scheduled check cycle failed", "error", err)
		return
	}
	s.log.Info("scheduled check cycle finished",
		"success", summary.Success,
		"failed", summary.Failed,
	)
}

func (s *Scheduler) runPrune() {
	defer s.SyncNextRunTimestamps()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.engine.PruneHistory(ctx); err != nil {
		s.log.Error("scheduled history prune failed", "error", err)
	}
}
