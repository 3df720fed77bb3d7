// Package scheduler runs vacancy ingestion and expiry cleanup on cron schedules.
package scheduler

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sbilibin2017/gw-vacancies/internal/ingestion"
	"github.com/sbilibin2017/gw-vacancies/internal/logger"
)

// Ingestor fetches and stores vacancies from the named sources.
type Ingestor interface {
	Run(ctx context.Context, names []string) ([]ingestion.Outcome, error)
}

// Cleaner removes stale vacancies.
type Cleaner interface {
	DropExpired(ctx context.Context) (int64, error)
}

// Scheduler wraps robfig/cron and owns the periodic jobs.
type Scheduler struct {
	cron        *cron.Cron
	ingestor    Ingestor
	cleaner     Cleaner
	sources     []string
	ingestSpec  string
	cleanupSpec string
	runOnStart  bool

	wg sync.WaitGroup
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithSources restricts scheduled ingestion to the named sources.
func WithSources(names ...string) Option {
	return func(s *Scheduler) {
		s.sources = names
	}
}

// WithRunOnStart runs one ingestion as soon as the scheduler starts.
func WithRunOnStart() Option {
	return func(s *Scheduler) {
		s.runOnStart = true
	}
}

// New creates a Scheduler. An empty spec disables the matching job.
func New(ingestor Ingestor, cleaner Cleaner, ingestSpec, cleanupSpec string, opts ...Option) *Scheduler {
	s := &Scheduler{
		cron:        cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		ingestor:    ingestor,
		cleaner:     cleaner,
		ingestSpec:  ingestSpec,
		cleanupSpec: cleanupSpec,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.ingestSpec != "" {
		if _, err := s.cron.AddFunc(s.ingestSpec, func() { s.ingest(ctx) }); err != nil {
			return fmt.Errorf("ingest schedule %q: %w", s.ingestSpec, err)
		}
	}
	if s.cleanupSpec != "" {
		if _, err := s.cron.AddFunc(s.cleanupSpec, func() { s.cleanup(ctx) }); err != nil {
			return fmt.Errorf("cleanup schedule %q: %w", s.cleanupSpec, err)
		}
	}

	s.cron.Start()
	logger.Log.Infow("scheduler started", "ingest", s.ingestSpec, "cleanup", s.cleanupSpec)

	if s.runOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.ingest(ctx)
		}()
	}
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.wg.Wait()
	logger.Log.Info("scheduler stopped")
}

func (s *Scheduler) ingest(ctx context.Context) {
	outcomes, err := s.ingestor.Run(ctx, s.sources)
	if err != nil {
		logger.Log.Errorw("scheduled ingestion failed", "err", err)
		return
	}

	var created, updated, failed int
	for _, o := range outcomes {
		created += o.Created
		updated += o.Updated
		failed += o.Failed
	}
	logger.Log.Infow("scheduled ingestion finished",
		"sources", len(outcomes),
		"created", created,
		"updated", updated,
		"failed", failed,
	)
}

func (s *Scheduler) cleanup(ctx context.Context) {
	if _, err := s.cleaner.DropExpired(ctx); err != nil {
		logger.Log.Errorw("scheduled cleanup failed", "err", err)
	}
}
