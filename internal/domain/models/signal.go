package models

// Signal is a categorical trading recommendation derived solely from the
// 24-hour percent price change.
type Signal string

const (
	SignalStrongBuy  Signal = "strong_buy"
	SignalBuy        Signal = "buy"
	SignalWeakBuy    Signal = "weak_buy"
	SignalHold       Signal = "hold"
	SignalWeakSell   Signal = "weak_sell"
	SignalSell       Signal = "sell"
	SignalStrongSell Signal = "strong_sell"
)

// Recommended action tags paired with signals.
const (
	ActionEnterLongNow  = "ENTER_LONG_NOW"
	ActionEnterLong     = "ENTER_LONG"
	ActionEnterShortNow = "ENTER_SHORT_NOW"
	ActionEnterShort    = "ENTER_SHORT"
	ActionHoldPosition  = "HOLD_POSITION"
)

// SignalVerdict pairs a signal with its confidence score and action tag.
// Derived, never persisted.
type SignalVerdict struct {
	Signal     Signal  `json:"signal"`
	Confidence float64 `json:"confidence"`
	Action     string  `json:"action"`
}
