package cleanup

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/pkg/logger"
)

// Pruner deletes records whose session was last seen before a cutoff
type Pruner interface {
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service periodically removes preferences of sessions that have not been
// seen for longer than the session cookie lives. A visitor can never present
// those session IDs again.
type Service struct {
	pruner   Pruner
	maxAge   time.Duration
	interval time.Duration
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates a new cleanup service
func NewService(pruner Pruner, maxAge, interval time.Duration, log *zap.Logger) *Service {
	log = logger.OrNop(log)
	return &Service{
		pruner:   pruner,
		maxAge:   maxAge,
		interval: interval,
		log:      log.Named("cleanup"),
		now:      time.Now,
	}
}

// Run prunes once immediately and then on every interval until ctx is done
func (s *Service) Run(ctx context.Context) {
	if s.interval <= 0 || s.maxAge <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("cleanup service started",
		zap.Duration("interval", s.interval), zap.Duration("max_age", s.maxAge))

	_, _ = s.Prune(ctx)
	for {
		select {
		case <-ticker.C:
			_, _ = s.Prune(ctx)
		case <-ctx.Done():
			s.log.Info("cleanup service stopped")
			return
		}
	}
}

// Prune removes everything whose session was last seen more than maxAge ago
func (s *Service) Prune(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.maxAge).UTC()
	removed, err := s.pruner.DeleteBefore(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Warn("failed to prune preferences", zap.Error(err))
		}
		return 0, err
	}
	if removed > 0 {
		s.log.Info("pruned stale preferences", zap.Int64("removed", removed))
	}
	return removed, nil
}
