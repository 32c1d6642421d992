package usecase

import (
	"context"
	"time"

	"TradePulse/internal/domain/models"
	drepo "TradePulse/internal/domain/repository"
	"TradePulse/internal/service/cache"
	"TradePulse/internal/service/metrics"
	"TradePulse/internal/service/ratelimit"
	xlogger "TradePulse/pkg/logger"
)

// PriceService answers price lookups from the snapshot cache, fetching from
// the upstream source on miss or staleness. The fetch runs outside any
// lock; concurrent misses for the same symbol may fetch redundantly and the
// last write wins.
type PriceService struct {
	source       drepo.PriceSource
	cache        cache.SnapshotCache
	metrics      drepo.Metrics
	logger       *xlogger.Logger
	freshness    time.Duration
	fetchTimeout time.Duration
	pacer        *ratelimit.Pacer
}

func NewPriceService(
	source drepo.PriceSource,
	snapCache cache.SnapshotCache,
	m drepo.Metrics,
	logger *xlogger.Logger,
	freshness, fetchTimeout time.Duration,
	pacer *ratelimit.Pacer,
) *PriceService {
	return &PriceService{
		source:       source,
		cache:        snapCache,
		metrics:      m,
		logger:       logger,
		freshness:    freshness,
		fetchTimeout: fetchTimeout,
		pacer:        pacer,
	}
}

// GetPrice returns a fresh snapshot for symbol, from cache when possible.
// Repeated calls within the freshness window never re-fetch. On fetch
// failure the cache is left unchanged.
func (s *PriceService) GetPrice(ctx context.Context, symbol string) (models.PriceSnapshot, error) {
	sym := models.NormalizeTicker(symbol)

	snap, ok, err := s.cache.Get(ctx, sym)
	if err != nil {
		// Cache backend trouble degrades to a miss.
		s.logger.Warn("cache get failed", xlogger.String("symbol", sym), xlogger.Error(err))
	}
	if ok {
		s.metrics.RecordCacheLookup(metrics.CacheHit)
		return snap, nil
	}
	s.metrics.RecordCacheLookup(metrics.CacheMiss)

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	snap, err = s.source.Fetch(fetchCtx, sym)
	s.metrics.RecordFetchLatency(time.Since(start).Seconds())
	if err != nil {
		s.metrics.RecordFetch(sym, metrics.OutcomeError)
		return models.PriceSnapshot{}, err
	}
	s.metrics.RecordFetch(sym, metrics.OutcomeOK)
	s.metrics.RecordLastPrice(sym, snap.Price)

	if err := s.cache.Set(ctx, sym, snap, s.freshness); err != nil {
		s.logger.Warn("cache set failed", xlogger.String("symbol", sym), xlogger.Error(err))
	}
	return snap, nil
}

// AllPrices returns one snapshot per supported symbol in fixed order. A
// failed fetch yields a zeroed placeholder instead of failing the batch;
// calls are paced to respect the upstream rate limit.
func (s *PriceService) AllPrices(ctx context.Context) []models.PriceSnapshot {
	out := make([]models.PriceSnapshot, 0, len(models.SupportedSymbols))
	for _, sym := range models.SupportedSymbols {
		if err := s.pacer.Wait(ctx); err != nil {
			out = append(out, models.Placeholder(sym))
			continue
		}
		snap, err := s.GetPrice(ctx, sym)
		if err != nil {
			s.logger.Warn("price fetch failed, using placeholder",
				xlogger.String("symbol", sym), xlogger.Error(err))
			out = append(out, models.Placeholder(sym))
			continue
		}
		out = append(out, snap)
	}
	return out
}

// ClearCache atomically empties the cache; the next lookup re-fetches.
func (s *PriceService) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

// CacheStats reports cache contents without touching freshness.
func (s *PriceService) CacheStats(ctx context.Context) (models.CacheStats, error) {
	return s.cache.Stats(ctx)
}
