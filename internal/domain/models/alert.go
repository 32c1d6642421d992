package models

import "time"

// DefaultAlertName is stored when a webhook omits alert_name.
const DefaultAlertName = "Unknown"

// Alert records one inbound webhook notification from an external charting
// tool. The price is the caller-supplied trigger price and is intentionally
// not cross-checked against the live cache. Immutable once appended.
type Alert struct {
	Symbol     string    `json:"symbol"`
	Price      float64   `json:"price"`
	AlertName  string    `json:"alert_name"`
	ReceivedAt time.Time `json:"timestamp"`
}
