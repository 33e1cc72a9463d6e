package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper periodically removes uploads orphaned by a crash mid-request.
// Uploads of live requests are younger than the ttl and are left alone.
type Sweeper struct {
	cron   *cron.Cron
	store  *Store
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewSweeper(store *Store, schedule string, ttl time.Duration, logger *zap.SugaredLogger) (*Sweeper, error) {
	s := &Sweeper{
		cron:   cron.New(),
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.RunOnce); err != nil {
		return nil, fmt.Errorf("schedule upload sweep %q: %w", schedule, err)
	}
	return s, nil
}

// RunOnce performs one sweep and logs the outcome.
func (s *Sweeper) RunOnce() {
	removed, err := s.store.Sweep(s.ttl)
	if err != nil {
		s.logger.Errorw("Upload sweep failed", "dir", s.store.Dir(), "error", err)
		return
	}
	if removed > 0 {
		s.logger.Infow("Removed stale uploads", "dir", s.store.Dir(), "removed", removed, "ttl", s.ttl.String())
	}
}

// Start sweeps once immediately and then on schedule.
func (s *Sweeper) Start() {
	s.RunOnce()
	s.cron.Start()
}

// Stop halts the schedule. The returned context is done once a running sweep
// has finished.
func (s *Sweeper) Stop() context.Context {
	return s.cron.Stop()
}
