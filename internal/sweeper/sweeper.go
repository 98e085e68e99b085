package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/tourze/raffle-core/internal/logger"
	"github.com/tourze/raffle-core/internal/metrics"
	"github.com/tourze/raffle-core/internal/repository"
)

// Log Messages
const (
	LogMsgSweepStarting  = "Retention sweep starting"
	LogMsgSweepCompleted = "Retention sweep completed"
)

// Sweeper expires abandoned chances past the retention window. It implements
// worker.Job and is driven by the scheduler.
type Sweeper struct {
	repo      repository.Sweeper
	retention time.Duration
	now       func() time.Time
}

// New creates a retention sweeper
func New(repo repository.Sweeper, retention time.Duration) *Sweeper {
	return &Sweeper{
		repo:      repo,
		retention: retention,
		now:       time.Now,
	}
}

// Process runs one sweep pass
func (s *Sweeper) Process(ctx context.Context) error {
	cutoff := s.now().Add(-s.retention)
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSweepStarting, "cutoff", cutoff)

	expired, err := s.repo.ExpireStaleChances(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("retention sweep failed: %w", err)
	}

	if expired > 0 {
		metrics.ChancesExpiredTotal.Add(float64(expired))
		log.Info(LogMsgSweepCompleted, "expired", expired, "cutoff", cutoff)
	}
	return nil
}
