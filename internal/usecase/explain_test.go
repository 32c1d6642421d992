package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"TradePulse/internal/domain/models"
	"TradePulse/internal/service/explain"
	"TradePulse/internal/service/ratelimit"
	"TradePulse/pkg/logger"
)

func newExplainService(src *stubSource) *ExplainService {
	prices := newPriceService(src, 30*time.Second)
	return NewExplainService(prices, explain.New(), ratelimit.NewPacer(0), logger.Nop())
}

func TestExplainSymbol(t *testing.T) {
	svc := newExplainService(&stubSource{})

	expl, err := svc.ExplainSymbol(context.Background(), "btc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expl.Symbol != "BTC" {
		t.Fatalf("expected BTC, got %s", expl.Symbol)
	}
	// Stub change of 1.5% derives hold.
	if expl.CurrentSignal != string(models.SignalHold) {
		t.Fatalf("expected hold, got %s", expl.CurrentSignal)
	}
}

func TestExplainSymbolUnsupported(t *testing.T) {
	svc := newExplainService(&stubSource{})
	if _, err := svc.ExplainSymbol(context.Background(), "DOGE"); !errors.Is(err, models.ErrUnsupportedSymbol) {
		t.Fatalf("expected ErrUnsupportedSymbol, got %v", err)
	}
}

func TestExplainSymbolPropagatesFetchError(t *testing.T) {
	svc := newExplainService(&stubSource{failFor: map[string]error{
		"BTC": fmt.Errorf("%w: down", models.ErrUpstreamUnavailable),
	}})
	if _, err := svc.ExplainSymbol(context.Background(), "BTC"); !errors.Is(err, models.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestExplainAllSubstitutesErrorExplanation(t *testing.T) {
	svc := newExplainService(&stubSource{failFor: map[string]error{
		"SOL": fmt.Errorf("%w: down", models.ErrUpstreamUnavailable),
	}})

	expls := svc.ExplainAll(context.Background())
	if len(expls) != len(models.SupportedSymbols) {
		t.Fatalf("expected %d entries, got %d", len(models.SupportedSymbols), len(expls))
	}
	for _, e := range expls {
		if e.Symbol == "SOL" {
			if e.CurrentSignal != "unknown" || !strings.Contains(e.Explanation, "Unable to fetch") {
				t.Fatalf("expected error explanation for SOL, got %+v", e)
			}
			continue
		}
		if e.Confidence == 0 {
			t.Fatalf("expected real explanation for %s", e.Symbol)
		}
	}
}
