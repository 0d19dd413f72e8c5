package service

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/wfca-mz/fire-widget/internal/cache/keys"
	"github.com/wfca-mz/fire-widget/internal/domain"
	"github.com/wfca-mz/fire-widget/internal/metrics"
)

type fireService struct {
	repo        FireRepository
	cache       CacheStore
	logger      *slog.Logger
	metrics     *metrics.Provider
	ttl         time.Duration
	sweepMaxAge time.Duration
	sweepProb   float64
	randFloat   func() float64
}

func NewFireService(
	repo FireRepository,
	cache CacheStore,
	logger *slog.Logger,
	m *metrics.Provider,
	ttl time.Duration,
	sweepMaxAge time.Duration,
	sweepProb float64,
) FireService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &fireService{
		repo:        repo,
		cache:       cache,
		logger:      logger,
		metrics:     m,
		ttl:         ttl,
		sweepMaxAge: sweepMaxAge,
		sweepProb:   sweepProb,
		randFloat:   rand.Float64,
	}
}

// ListActive serves one normalized query. A cache backend failure counts as
// a miss and the request proceeds; a cache write failure is logged and the
// freshly queried rows are still returned. Only a data source failure
// surfaces as an error.
func (s *fireService) ListActive(ctx context.Context, q domain.FireQuery) ([]domain.FireRow, bool, error) {
	key := keys.Fires(q)

	rows, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get failed, treating as miss",
			slog.String("key", key), slog.Any("error", err))
	}
	if ok {
		s.metrics.CacheHits.Inc()
		return rows, true, nil
	}
	s.metrics.CacheMisses.Inc()

	start := time.Now()
	rows, err = s.repo.ListActive(ctx, q)
	s.metrics.QueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("active fires query failed",
			slog.Int("limit", q.Limit),
			slog.String("state", q.State),
			slog.String("search", q.Search),
			slog.Any("error", err))
		return nil, false, err
	}

	if err := s.cache.Set(ctx, key, rows, s.ttl); err != nil {
		s.logger.Warn("cache set failed", slog.String("key", key), slog.Any("error", err))
	}

	s.maybeSweep()

	return rows, false, nil
}

// maybeSweep fires a background tidy of stale cache entries on a small
// fraction of misses. The response never waits on it.
func (s *fireService) maybeSweep() {
	if s.sweepProb <= 0 || s.randFloat() >= s.sweepProb {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		removed, err := s.cache.Sweep(ctx, s.sweepMaxAge)
		if err != nil {
			s.logger.Warn("cache sweep failed", slog.Any("error", err))
			return
		}
		if removed > 0 {
			s.metrics.SweepRemoved.Add(float64(removed))
			s.logger.Debug("cache sweep done", slog.Int("removed", removed))
		}
	}()
}
