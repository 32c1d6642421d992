package repository

import (
	"context"

	"TradePulse/internal/domain/models"
)

// PriceSource fetches the current price snapshot for one symbol from an
// external provider. Implementations classify failures with the domain
// error kinds in models.
type PriceSource interface {
	Fetch(ctx context.Context, symbol string) (models.PriceSnapshot, error)
}

// AlertPublisher fans a recorded alert out to an external sink. Publishing
// is best effort; the alert is already in the log when Publish is called.
type AlertPublisher interface {
	Publish(ctx context.Context, alert models.Alert) error
	Close() error
}

// Metrics records operational counters and gauges.
type Metrics interface {
	RecordFetch(symbol, outcome string)
	RecordFetchLatency(seconds float64)
	RecordCacheLookup(result string)
	RecordLastPrice(symbol string, price float64)
	RecordAlert(symbol string)
}
