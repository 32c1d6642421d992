package models

// Requests and responses for the HTTP endpoints. Defined as explicit record
// types so field names are checked at compile time instead of being built
// from string-keyed maps.

// WebhookRequest is the POST /tradingview-webhook body. The price is the
// caller's trigger price and is stored as sent, without validation.
type WebhookRequest struct {
	Symbol    string  `json:"symbol" validate:"required"`
	Price     float64 `json:"price"`
	AlertName string  `json:"alert_name"`
}

// ExplainRequest is the GET /explain-signal query.
type ExplainRequest struct {
	Symbol string `query:"symbol" json:"symbol" default:"BTC"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status         string   `json:"status"`
	Service        string   `json:"service"`
	SupportedCoins []string `json:"supported_coins"`
	Endpoints      []string `json:"endpoints"`
}

// SignalEntry is one row of the GET /signals batch. On a per-symbol fetch
// failure Error is set and the price/signal fields stay zeroed; the batch
// itself still succeeds.
type SignalEntry struct {
	Symbol     string  `json:"symbol"`
	Price      float64 `json:"price"`
	Change24h  float64 `json:"change_24h"`
	Signal     Signal  `json:"signal,omitempty"`
	Confidence float64 `json:"confidence"`
	Action     string  `json:"action,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// AlertListResponse is the GET /tradingview-alerts and GET /alerts/:symbol body.
type AlertListResponse struct {
	Count  int     `json:"count"`
	Alerts []Alert `json:"alerts"`
}

// CacheStatsResponse is the GET /cache-stats body.
type CacheStatsResponse struct {
	CachedEntries int      `json:"cached_entries"`
	CachedSymbols []string `json:"cached_symbols"`
	AlertCount    int      `json:"alert_count"`
}

// ClearedResponse acknowledges the clear-alerts / clear-cache utilities.
type ClearedResponse struct {
	Cleared string `json:"cleared"`
}
