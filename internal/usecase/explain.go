package usecase

import (
	"context"

	"TradePulse/internal/domain/models"
	domsvc "TradePulse/internal/domain/service"
	"TradePulse/internal/service/ratelimit"
	xlogger "TradePulse/pkg/logger"
)

// ExplainService produces textual annotations for derived signals.
type ExplainService struct {
	prices    *PriceService
	explainer domsvc.Explainer
	pacer     *ratelimit.Pacer
	logger    *xlogger.Logger
}

func NewExplainService(prices *PriceService, explainer domsvc.Explainer, pacer *ratelimit.Pacer, logger *xlogger.Logger) *ExplainService {
	return &ExplainService{prices: prices, explainer: explainer, pacer: pacer, logger: logger}
}

// ExplainSymbol explains the current signal for one symbol. The symbol must
// be in the supported set (ErrUnsupportedSymbol otherwise); a failed price
// fetch propagates so the handler can answer 503.
func (s *ExplainService) ExplainSymbol(ctx context.Context, symbol string) (models.SignalExplanation, error) {
	sym, err := NormalizeAlertSymbol(symbol)
	if err != nil {
		return models.SignalExplanation{}, err
	}

	snap, err := s.prices.GetPrice(ctx, sym)
	if err != nil {
		return models.SignalExplanation{}, err
	}

	verdict := DeriveSignal(snap.Change24h)
	return s.explainer.Explain(ctx, sym, verdict.Signal, snap.Price, snap.Change24h), nil
}

// ExplainAll explains every supported symbol in fixed order. A failed fetch
// yields an error explanation instead of failing the batch; calls are paced
// separately from the price batches.
func (s *ExplainService) ExplainAll(ctx context.Context) []models.SignalExplanation {
	out := make([]models.SignalExplanation, 0, len(models.SupportedSymbols))
	for _, sym := range models.SupportedSymbols {
		if err := s.pacer.Wait(ctx); err != nil {
			out = append(out, errorExplanation(sym, err))
			continue
		}
		expl, err := s.ExplainSymbol(ctx, sym)
		if err != nil {
			s.logger.Warn("explain fetch failed", xlogger.String("symbol", sym), xlogger.Error(err))
			out = append(out, errorExplanation(sym, err))
			continue
		}
		out = append(out, expl)
	}
	return out
}

// errorExplanation is the batch placeholder for a symbol whose price fetch
// failed.
func errorExplanation(symbol string, err error) models.SignalExplanation {
	return models.SignalExplanation{
		Symbol:        symbol,
		CurrentSignal: "unknown",
		Explanation:   "Unable to fetch price data: " + err.Error(),
		Confidence:    0,
		Emoji:         "⚠️",
		Vibe:          "Unavailable",
		SimpleAdvice:  "Try again later",
		RiskLevel:     "Unknown",
	}
}
