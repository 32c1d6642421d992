package usecase

import (
	"context"
	"math"

	"TradePulse/internal/domain/models"
	xlogger "TradePulse/pkg/logger"
)

// DeriveSignal maps a 24h percent change onto a signal verdict. Pure and
// total: thresholds are evaluated in fixed priority order, first match
// wins, and anything between -2 and +2 inclusive of the boundaries holds.
func DeriveSignal(change24h float64) models.SignalVerdict {
	var (
		sig        models.Signal
		confidence float64
	)
	switch {
	case change24h > 10:
		sig, confidence = models.SignalStrongSell, 0.85
	case change24h > 5:
		sig, confidence = models.SignalSell, 0.75
	case change24h > 2:
		sig, confidence = models.SignalWeakSell, 0.65
	case change24h < -10:
		sig, confidence = models.SignalStrongBuy, 0.85
	case change24h < -5:
		sig, confidence = models.SignalBuy, 0.75
	case change24h < -2:
		sig, confidence = models.SignalWeakBuy, 0.65
	default:
		sig, confidence = models.SignalHold, 0.80
	}

	return models.SignalVerdict{
		Signal:     sig,
		Confidence: roundConfidence(confidence),
		Action:     ActionFor(sig),
	}
}

// ActionFor is the fixed signal-to-action lookup.
func ActionFor(sig models.Signal) string {
	switch sig {
	case models.SignalStrongBuy:
		return models.ActionEnterLongNow
	case models.SignalBuy:
		return models.ActionEnterLong
	case models.SignalStrongSell:
		return models.ActionEnterShortNow
	case models.SignalSell:
		return models.ActionEnterShort
	default:
		return models.ActionHoldPosition
	}
}

func roundConfidence(c float64) float64 {
	return math.Round(c*100) / 100
}

// SignalService derives signals for the supported symbol set on top of the
// price service.
type SignalService struct {
	prices *PriceService
	logger *xlogger.Logger
}

func NewSignalService(prices *PriceService, logger *xlogger.Logger) *SignalService {
	return &SignalService{prices: prices, logger: logger}
}

// AllSignals returns one entry per supported symbol in fixed order. A
// failed fetch yields an error entry; the batch itself always succeeds.
// Pacing comes from the shared price path.
func (s *SignalService) AllSignals(ctx context.Context) []models.SignalEntry {
	out := make([]models.SignalEntry, 0, len(models.SupportedSymbols))
	for _, sym := range models.SupportedSymbols {
		if err := s.prices.pacer.Wait(ctx); err != nil {
			out = append(out, models.SignalEntry{Symbol: sym, Error: err.Error()})
			continue
		}
		snap, err := s.prices.GetPrice(ctx, sym)
		if err != nil {
			s.logger.Warn("signal fetch failed", xlogger.String("symbol", sym), xlogger.Error(err))
			out = append(out, models.SignalEntry{Symbol: sym, Error: err.Error()})
			continue
		}
		verdict := DeriveSignal(snap.Change24h)
		out = append(out, models.SignalEntry{
			Symbol:     sym,
			Price:      snap.Price,
			Change24h:  snap.Change24h,
			Signal:     verdict.Signal,
			Confidence: verdict.Confidence,
			Action:     verdict.Action,
		})
	}
	return out
}
