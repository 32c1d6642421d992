package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"TradePulse/internal/domain/models"
)

func TestFetchBuildsSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "bitcoin" {
			t.Fatalf("expected ids=bitcoin, got %q", got)
		}
		if got := r.URL.Query().Get("vs_currencies"); got != "usd" {
			t.Fatalf("expected vs_currencies=usd, got %q", got)
		}
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":65000.5,"usd_market_cap":1.2e12,"usd_24h_vol":3.4e10,"usd_24h_change":-2.5}}`))
	}))
	defer server.Close()

	client := New(server.URL, "", time.Second)
	snap, err := client.Fetch(context.Background(), "BTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Symbol != "BTC" || snap.Price != 65000.5 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Change24h != -2.5 {
		t.Fatalf("expected change -2.5, got %v", snap.Change24h)
	}
	if snap.FetchedAt.IsZero() {
		t.Fatalf("expected fetch timestamp")
	}
}

func TestFetchDefaultsOptionalFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"pax-gold":{"usd":2400.0}}`))
	}))
	defer server.Close()

	snap, err := New(server.URL, "", time.Second).Fetch(context.Background(), "PAXG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Change24h != 0 || snap.MarketCap != 0 || snap.Volume24h != 0 {
		t.Fatalf("expected zeroed optionals, got %+v", snap)
	}
}

func TestFetchUnknownSymbol(t *testing.T) {
	client := New("http://unused", "", time.Second)
	_, err := client.Fetch(context.Background(), "DOGE")
	if !errors.Is(err, models.ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestFetchUpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := New(server.URL, "", time.Second).Fetch(context.Background(), "ETH")
	if !errors.Is(err, models.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestFetchMissingPriceField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"solana":{"usd_24h_change":1.0}}`))
	}))
	defer server.Close()

	_, err := New(server.URL, "", time.Second).Fetch(context.Background(), "SOL")
	if !errors.Is(err, models.ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := New(server.URL, "", time.Second).Fetch(context.Background(), "BTC")
	if !errors.Is(err, models.ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestFetchSendsAPIKeyHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-cg-demo-api-key"); got != "secret" {
			t.Fatalf("expected api key header, got %q", got)
		}
		_, _ = w.Write([]byte(`{"ethereum":{"usd":3000.0}}`))
	}))
	defer server.Close()

	if _, err := New(server.URL, "secret", time.Second).Fetch(context.Background(), "ETH"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
