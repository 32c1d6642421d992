package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestPacerSpacesCalls(t *testing.T) {
	p := NewPacer(30 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := p.Wait(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	elapsed := time.Since(start)

	// First call is immediate; the next two are spaced by the interval.
	if elapsed < 60*time.Millisecond {
		t.Fatalf("expected at least 60ms for 3 calls, got %s", elapsed)
	}
}

func TestPacerZeroIntervalImmediate(t *testing.T) {
	p := NewPacer(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := p.Wait(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("expected no pacing, got %s", elapsed)
	}
}

func TestPacerCancel(t *testing.T) {
	p := NewPacer(time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	if err := p.Wait(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cancel()
	if err := p.Wait(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
