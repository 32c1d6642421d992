package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"TradePulse/internal/domain/models"
	drepo "TradePulse/internal/domain/repository"
	xlogger "TradePulse/pkg/logger"
)

// MaxStoredAlerts bounds the in-memory alert log.
const MaxStoredAlerts = 50

// NormalizeAlertSymbol maps a raw webhook ticker onto one of the supported
// symbols: the part after the last namespace separator, with known quote
// suffixes stripped and non-letters removed. Returns ErrUnsupportedSymbol
// for anything outside the whitelist.
func NormalizeAlertSymbol(raw string) (string, error) {
	s := raw
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "USDT")
	s = strings.TrimSuffix(s, "USD")

	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	sym := b.String()

	if !models.IsSupported(sym) {
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedSymbol, raw)
	}
	return sym, nil
}

// AlertLog is a bounded, time-ordered record of webhook alerts. Append and
// trim happen under one lock, so insertion order equals arrival order at
// the lock and the log never exceeds its capacity.
type AlertLog struct {
	mu       sync.Mutex
	alerts   []models.Alert
	capacity int
}

// NewAlertLog creates a log bounded to capacity entries.
func NewAlertLog(capacity int) *AlertLog {
	return &AlertLog{capacity: capacity}
}

// Append adds an alert and evicts the oldest entries beyond capacity.
func (l *AlertLog) Append(a models.Alert) {
	l.mu.Lock()
	l.alerts = append(l.alerts, a)
	if over := len(l.alerts) - l.capacity; over > 0 {
		l.alerts = l.alerts[over:]
	}
	l.mu.Unlock()
}

// All returns a snapshot copy of the log in arrival order.
func (l *AlertLog) All() []models.Alert {
	l.mu.Lock()
	out := make([]models.Alert, len(l.alerts))
	copy(out, l.alerts)
	l.mu.Unlock()
	return out
}

// BySymbol returns a snapshot copy filtered by normalized symbol equality,
// preserving order.
func (l *AlertLog) BySymbol(symbol string) []models.Alert {
	l.mu.Lock()
	out := make([]models.Alert, 0, len(l.alerts))
	for _, a := range l.alerts {
		if a.Symbol == symbol {
			out = append(out, a)
		}
	}
	l.mu.Unlock()
	return out
}

// Clear empties the log atomically.
func (l *AlertLog) Clear() {
	l.mu.Lock()
	l.alerts = nil
	l.mu.Unlock()
}

// Len reports the current log length.
func (l *AlertLog) Len() int {
	l.mu.Lock()
	n := len(l.alerts)
	l.mu.Unlock()
	return n
}

// AlertService validates and records inbound webhook alerts and answers
// alert queries. Publishing to the optional fan-out sink is best effort.
type AlertService struct {
	log       *AlertLog
	publisher drepo.AlertPublisher // nil when fan-out is disabled
	metrics   drepo.Metrics
	logger    *xlogger.Logger
}

func NewAlertService(log *AlertLog, publisher drepo.AlertPublisher, m drepo.Metrics, logger *xlogger.Logger) *AlertService {
	return &AlertService{log: log, publisher: publisher, metrics: m, logger: logger}
}

// Record normalizes and validates the raw symbol, then appends an alert
// with a server-assigned timestamp. No record is created for unsupported
// symbols.
func (s *AlertService) Record(ctx context.Context, rawSymbol string, price float64, alertName string) (models.Alert, error) {
	sym, err := NormalizeAlertSymbol(rawSymbol)
	if err != nil {
		return models.Alert{}, err
	}
	if alertName == "" {
		alertName = models.DefaultAlertName
	}

	alert := models.Alert{
		Symbol:     sym,
		Price:      price,
		AlertName:  alertName,
		ReceivedAt: time.Now(),
	}
	s.log.Append(alert)
	s.metrics.RecordAlert(sym)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, alert); err != nil {
			// Fan-out is best effort; the alert is already recorded.
			s.logger.Warn("alert publish failed", xlogger.String("symbol", sym), xlogger.Error(err))
		}
	}

	return alert, nil
}

// ListAll returns the full alert log snapshot in arrival order.
func (s *AlertService) ListAll() []models.Alert {
	return s.log.All()
}

// ListBySymbol filters alerts by a raw symbol, normalizing it first. A
// symbol outside the supported set simply matches nothing; only the webhook
// and explain paths reject unsupported symbols.
func (s *AlertService) ListBySymbol(rawSymbol string) []models.Alert {
	sym, err := NormalizeAlertSymbol(rawSymbol)
	if err != nil {
		return []models.Alert{}
	}
	return s.log.BySymbol(sym)
}

// ClearAll empties the alert log.
func (s *AlertService) ClearAll() {
	s.log.Clear()
}

// Count reports the current number of stored alerts.
func (s *AlertService) Count() int {
	return s.log.Len()
}
