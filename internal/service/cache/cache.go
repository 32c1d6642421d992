package cache

import (
	"context"
	"time"

	"TradePulse/internal/domain/models"
)

// SnapshotCache stores per-symbol price snapshots with a freshness TTL.
// A lookup after the TTL elapses behaves as a miss; entries are superseded
// lazily by the next Set, never evicted proactively.
type SnapshotCache interface {
	Get(ctx context.Context, symbol string) (models.PriceSnapshot, bool, error)
	Set(ctx context.Context, symbol string, snap models.PriceSnapshot, ttl time.Duration) error
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (models.CacheStats, error)
}
