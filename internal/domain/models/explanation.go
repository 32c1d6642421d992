package models

// SignalExplanation is a human-readable annotation for a derived signal.
// Producing one never fails; on internal failure the explainer degrades to
// generic text instead of returning an error.
type SignalExplanation struct {
	Symbol        string  `json:"symbol"`
	CurrentSignal string  `json:"current_signal"`
	Explanation   string  `json:"explanation"`
	Confidence    float64 `json:"confidence"`
	Emoji         string  `json:"emoji"`
	Vibe          string  `json:"vibe"`
	SimpleAdvice  string  `json:"simple_advice"`
	RiskLevel     string  `json:"risk_level"`
}
