package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"TradePulse/internal/domain/models"
)

type entry struct {
	snap models.PriceSnapshot
	exp  time.Time
}

// MemoryCache is the in-process snapshot cache. The mutex guards only the
// map; fetches happen outside the lock and racing writers are
// last-write-wins.
type MemoryCache struct {
	mu sync.RWMutex
	m  map[string]entry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: make(map[string]entry)}
}

func (c *MemoryCache) Get(_ context.Context, symbol string) (models.PriceSnapshot, bool, error) {
	c.mu.RLock()
	e, ok := c.m[symbol]
	c.mu.RUnlock()
	if !ok {
		return models.PriceSnapshot{}, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		return models.PriceSnapshot{}, false, nil
	}
	return e.snap, true, nil
}

func (c *MemoryCache) Set(_ context.Context, symbol string, snap models.PriceSnapshot, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.m[symbol] = entry{snap: snap, exp: exp}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.m = make(map[string]entry)
	c.mu.Unlock()
	return nil
}

// Stats counts all stored entries, fresh or stale; it does not affect
// freshness.
func (c *MemoryCache) Stats(_ context.Context) (models.CacheStats, error) {
	c.mu.RLock()
	symbols := make([]string, 0, len(c.m))
	for s := range c.m {
		symbols = append(symbols, s)
	}
	c.mu.RUnlock()
	sort.Strings(symbols)
	return models.CacheStats{Entries: len(symbols), Symbols: symbols}, nil
}
