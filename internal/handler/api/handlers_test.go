package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"TradePulse/internal/domain/models"
	"TradePulse/internal/service/cache"
	"TradePulse/internal/service/explain"
	"TradePulse/internal/service/ratelimit"
	"TradePulse/internal/usecase"
	"TradePulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

type fakeMetrics struct{}

func (fakeMetrics) RecordFetch(string, string)      {}
func (fakeMetrics) RecordFetchLatency(float64)      {}
func (fakeMetrics) RecordCacheLookup(string)        {}
func (fakeMetrics) RecordLastPrice(string, float64) {}
func (fakeMetrics) RecordAlert(string)              {}

type stubSource struct {
	failFor map[string]error
}

func (s *stubSource) Fetch(_ context.Context, symbol string) (models.PriceSnapshot, error) {
	if err, ok := s.failFor[symbol]; ok {
		return models.PriceSnapshot{}, err
	}
	return models.PriceSnapshot{Symbol: symbol, Price: 100, Change24h: 6.0, FetchedAt: time.Now()}, nil
}

func newTestServer(src *stubSource) (*echo.Echo, *usecase.AlertService) {
	l := logger.Nop()
	prices := usecase.NewPriceService(src, cache.NewMemoryCache(), fakeMetrics{}, l,
		30*time.Second, time.Second, ratelimit.NewPacer(0))
	signals := usecase.NewSignalService(prices, l)
	alerts := usecase.NewAlertService(usecase.NewAlertLog(usecase.MaxStoredAlerts), nil, fakeMetrics{}, l)
	explains := usecase.NewExplainService(prices, explain.New(), ratelimit.NewPacer(0), l)

	h := NewHandler(l, prices, signals, alerts, explains, StreamConfig{})
	e := echo.New()
	h.RegisterRoutes(e)
	return e, alerts
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestLiveness(t *testing.T) {
	e, _ := newTestServer(&stubSource{})
	rec, _ := doRequest(t, e, http.MethodGet, "/_health", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("expected plain OK, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHealthListsSupportedCoins(t *testing.T) {
	e, _ := newTestServer(&stubSource{})
	rec, env := doRequest(t, e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var hr models.HealthResponse
	if err := json.Unmarshal(env.Data, &hr); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if len(hr.SupportedCoins) != 4 || hr.SupportedCoins[0] != "BTC" {
		t.Fatalf("unexpected supported coins: %v", hr.SupportedCoins)
	}
}

func TestSignalsBatchAlwaysSucceeds(t *testing.T) {
	src := &stubSource{failFor: map[string]error{
		"ETH": fmt.Errorf("%w: down", models.ErrUpstreamUnavailable),
	}}
	e, _ := newTestServer(src)

	rec, env := doRequest(t, e, http.MethodGet, "/signals", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite per-symbol failure, got %d", rec.Code)
	}

	var entries []models.SignalEntry
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Symbol == "ETH" {
			if entry.Error == "" {
				t.Fatalf("expected error entry for ETH")
			}
			continue
		}
		// A 6% daily move derives sell.
		if entry.Signal != models.SignalSell || entry.Action != models.ActionEnterShort {
			t.Fatalf("unexpected entry: %+v", entry)
		}
	}
}

func TestPricesBatchSubstitutesPlaceholders(t *testing.T) {
	src := &stubSource{failFor: map[string]error{
		"PAXG": fmt.Errorf("%w: down", models.ErrUpstreamUnavailable),
	}}
	e, _ := newTestServer(src)

	rec, env := doRequest(t, e, http.MethodGet, "/prices", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var snaps []models.PriceSnapshot
	if err := json.Unmarshal(env.Data, &snaps); err != nil {
		t.Fatalf("decode snapshots: %v", err)
	}
	if len(snaps) != 4 {
		t.Fatalf("expected 4 snapshots, got %d", len(snaps))
	}
	if snaps[3].Symbol != "PAXG" || snaps[3].Price != 0 {
		t.Fatalf("expected zeroed PAXG placeholder, got %+v", snaps[3])
	}
}

func TestWebhookRecordsAlert(t *testing.T) {
	e, alerts := newTestServer(&stubSource{})

	rec, env := doRequest(t, e, http.MethodPost, "/tradingview-webhook",
		`{"symbol":"BINANCE:BTCUSDT","price":65000,"alert_name":"breakout"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var alert models.Alert
	if err := json.Unmarshal(env.Data, &alert); err != nil {
		t.Fatalf("decode alert: %v", err)
	}
	if alert.Symbol != "BTC" || alert.AlertName != "breakout" {
		t.Fatalf("unexpected alert: %+v", alert)
	}
	if alerts.Count() != 1 {
		t.Fatalf("expected 1 stored alert, got %d", alerts.Count())
	}
}

func TestWebhookRejectsUnsupportedSymbol(t *testing.T) {
	e, alerts := newTestServer(&stubSource{})

	rec, _ := doRequest(t, e, http.MethodPost, "/tradingview-webhook",
		`{"symbol":"DOGE","price":0.1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if alerts.Count() != 0 {
		t.Fatalf("expected no stored alert, got %d", alerts.Count())
	}
}

func TestWebhookValidation(t *testing.T) {
	e, _ := newTestServer(&stubSource{})
	rec, _ := doRequest(t, e, http.MethodPost, "/tradingview-webhook", `{"price":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing symbol, got %d", rec.Code)
	}
}

func TestWebhookStoresPriceAsSent(t *testing.T) {
	e, alerts := newTestServer(&stubSource{})

	// The trigger price is the caller's value; zero and negative are stored
	// unchanged.
	for _, body := range []string{
		`{"symbol":"BTC","price":0}`,
		`{"symbol":"ETH","price":-12.5}`,
	} {
		if rec, _ := doRequest(t, e, http.MethodPost, "/tradingview-webhook", body); rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
		}
	}

	stored := alerts.ListAll()
	if len(stored) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(stored))
	}
	if stored[0].Price != 0 || stored[1].Price != -12.5 {
		t.Fatalf("prices not stored as sent: %+v", stored)
	}
}

func TestExplainSignalDefaultsToBTC(t *testing.T) {
	e, _ := newTestServer(&stubSource{})
	rec, env := doRequest(t, e, http.MethodGet, "/explain-signal", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var expl models.SignalExplanation
	if err := json.Unmarshal(env.Data, &expl); err != nil {
		t.Fatalf("decode explanation: %v", err)
	}
	if expl.Symbol != "BTC" {
		t.Fatalf("expected default BTC, got %s", expl.Symbol)
	}
}

func TestExplainSignalUnsupported(t *testing.T) {
	e, _ := newTestServer(&stubSource{})
	rec, _ := doRequest(t, e, http.MethodGet, "/explain-signal?symbol=DOGE", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExplainSignalUpstreamFailure(t *testing.T) {
	src := &stubSource{failFor: map[string]error{
		"BTC": fmt.Errorf("%w: down", models.ErrUpstreamUnavailable),
	}}
	e, _ := newTestServer(src)
	rec, _ := doRequest(t, e, http.MethodGet, "/explain-signal?symbol=BTC", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestCacheLifecycleEndpoints(t *testing.T) {
	e, _ := newTestServer(&stubSource{})

	// Warm the cache.
	if rec, _ := doRequest(t, e, http.MethodGet, "/prices", ""); rec.Code != http.StatusOK {
		t.Fatalf("warm failed: %d", rec.Code)
	}

	_, env := doRequest(t, e, http.MethodGet, "/cache-stats", "")
	var stats models.CacheStatsResponse
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.CachedEntries != 4 {
		t.Fatalf("expected 4 cached entries, got %d", stats.CachedEntries)
	}

	if rec, _ := doRequest(t, e, http.MethodPost, "/clear-cache", ""); rec.Code != http.StatusOK {
		t.Fatalf("clear failed: %d", rec.Code)
	}

	_, env = doRequest(t, e, http.MethodGet, "/cache-stats", "")
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.CachedEntries != 0 {
		t.Fatalf("expected empty cache, got %d", stats.CachedEntries)
	}
}

func TestAlertQueryEndpoints(t *testing.T) {
	e, _ := newTestServer(&stubSource{})

	for _, body := range []string{
		`{"symbol":"BTCUSDT","price":65000}`,
		`{"symbol":"ETHUSDT","price":3000}`,
	} {
		if rec, _ := doRequest(t, e, http.MethodPost, "/tradingview-webhook", body); rec.Code != http.StatusCreated {
			t.Fatalf("webhook failed: %d", rec.Code)
		}
	}

	_, env := doRequest(t, e, http.MethodGet, "/tradingview-alerts", "")
	var list models.AlertListResponse
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 2 {
		t.Fatalf("expected 2 alerts, got %d", list.Count)
	}

	_, env = doRequest(t, e, http.MethodGet, "/alerts/BTC", "")
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 1 || list.Alerts[0].Symbol != "BTC" {
		t.Fatalf("unexpected BTC alerts: %+v", list)
	}

	// An unsupported symbol filters to an empty list, not an error.
	rec, env := doRequest(t, e, http.MethodGet, "/alerts/DOGE", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unsupported filter, got %d", rec.Code)
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 0 {
		t.Fatalf("expected empty list for DOGE, got %d", list.Count)
	}

	if rec, _ := doRequest(t, e, http.MethodPost, "/clear-alerts", ""); rec.Code != http.StatusOK {
		t.Fatalf("clear failed: %d", rec.Code)
	}
	_, env = doRequest(t, e, http.MethodGet, "/tradingview-alerts", "")
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 0 {
		t.Fatalf("expected empty log, got %d", list.Count)
	}
}
