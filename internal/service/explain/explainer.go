package explain

import (
	"context"
	"fmt"

	"TradePulse/internal/domain/models"
	domsvc "TradePulse/internal/domain/service"
)

// explanationConfidence is reported with every rule-based explanation.
const explanationConfidence = 0.85

// RuleExplainer annotates signals with canned market commentary. It never
// fails: unrecognized signals fall through to a generic mixed-sentiment
// explanation.
type RuleExplainer struct{}

func New() domsvc.Explainer {
	return &RuleExplainer{}
}

func (e *RuleExplainer) Explain(_ context.Context, symbol string, signal models.Signal, price, change24h float64) models.SignalExplanation {
	var (
		explanation string
		emoji       string
		vibe        string
		riskLevel   string
	)

	switch signal {
	case models.SignalStrongBuy, models.SignalBuy, models.SignalWeakBuy:
		explanation = fmt.Sprintf("%s is showing bullish momentum at $%.2f. 24h change: %.2f%%", symbol, price, change24h)
		emoji = "🚀"
		vibe = "Bullish vibes"
		riskLevel = "Medium"
	case models.SignalStrongSell, models.SignalSell, models.SignalWeakSell:
		explanation = fmt.Sprintf("%s might be overbought at $%.2f. 24h change: %.2f%%", symbol, price, change24h)
		emoji = "📉"
		vibe = "Caution vibes"
		riskLevel = "High"
	case models.SignalHold:
		explanation = fmt.Sprintf("%s is in consolidation phase at $%.2f. 24h change: %.2f%%", symbol, price, change24h)
		emoji = "⚖️"
		vibe = "Neutral vibes"
		riskLevel = "Low"
	default:
		explanation = fmt.Sprintf("%s at $%.2f: Market sentiment is mixed. 24h change: %.2f%%", symbol, price, change24h)
		emoji = "🤔"
		vibe = "Mixed vibes"
		riskLevel = "Medium"
	}

	return models.SignalExplanation{
		Symbol:        symbol,
		CurrentSignal: string(signal),
		Explanation:   explanation,
		Confidence:    explanationConfidence,
		Emoji:         emoji,
		Vibe:          vibe,
		SimpleAdvice:  adviceFor(change24h),
		RiskLevel:     riskLevel,
	}
}

func adviceFor(change24h float64) string {
	switch {
	case change24h > 10:
		return "🚨 Very strong trend - High risk opportunity"
	case change24h > 5:
		return "🔥 Strong trend - Consider position sizing"
	case change24h < -10:
		return "💥 Sharp decline - Possible buying opportunity"
	case change24h < -5:
		return "⚠️ High volatility - Risk management crucial"
	default:
		return "📊 Stable range - Good for swing trading"
	}
}
