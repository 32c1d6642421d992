package cache

import (
	"context"
	"testing"
	"time"

	"TradePulse/internal/domain/models"
)

func TestMemoryCacheGetSet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, ok, _ := c.Get(ctx, "BTC"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	snap := models.PriceSnapshot{Symbol: "BTC", Price: 65000, FetchedAt: time.Now()}
	if err := c.Set(ctx, "BTC", snap, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "BTC")
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if got != snap {
		t.Fatalf("expected stored snapshot back, got %+v", got)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_ = c.Set(ctx, "ETH", models.PriceSnapshot{Symbol: "ETH"}, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "ETH"); ok {
		t.Fatalf("expected stale entry to read as a miss")
	}

	// Stale entries are superseded lazily, not evicted: stats still sees them.
	stats, _ := c.Stats(ctx)
	if stats.Entries != 1 {
		t.Fatalf("expected stale entry still counted, got %d", stats.Entries)
	}
}

func TestMemoryCacheClearAndStats(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_ = c.Set(ctx, "SOL", models.PriceSnapshot{Symbol: "SOL"}, time.Minute)
	_ = c.Set(ctx, "BTC", models.PriceSnapshot{Symbol: "BTC"}, time.Minute)

	stats, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Entries != 2 {
		t.Fatalf("expected 2 entries, got %d", stats.Entries)
	}
	if stats.Symbols[0] != "BTC" || stats.Symbols[1] != "SOL" {
		t.Fatalf("expected sorted symbols, got %v", stats.Symbols)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats, _ = c.Stats(ctx)
	if stats.Entries != 0 {
		t.Fatalf("expected empty cache after clear, got %d", stats.Entries)
	}
}
