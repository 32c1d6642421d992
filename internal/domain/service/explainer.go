package service

import (
	"context"

	"TradePulse/internal/domain/models"
)

// Explainer maps a derived signal onto a human-readable explanation.
// It must not fail the caller: implementations degrade to generic text
// instead of returning an error.
type Explainer interface {
	Explain(ctx context.Context, symbol string, signal models.Signal, price, change24h float64) models.SignalExplanation
}
