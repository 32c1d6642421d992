package models

import (
	"strings"
	"time"
)

// SupportedSymbols is the fixed asset list served by this backend, in the
// order batch endpoints iterate over it.
var SupportedSymbols = []string{"BTC", "ETH", "SOL", "PAXG"}

// IsSupported reports whether symbol is one of the served assets.
// The check expects an already-normalized uppercase ticker.
func IsSupported(symbol string) bool {
	for _, s := range SupportedSymbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// NormalizeTicker uppercases and trims a raw ticker. It does not apply
// webhook-style namespace or quote-suffix stripping; see usecase.NormalizeAlertSymbol.
func NormalizeTicker(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// PriceSnapshot is an immutable point-in-time price observation for one
// symbol. A newer snapshot supersedes an older one; snapshots are never
// mutated in place.
type PriceSnapshot struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Change24h float64   `json:"change_24h"`
	MarketCap float64   `json:"market_cap"`
	Volume24h float64   `json:"volume_24h"`
	FetchedAt time.Time `json:"timestamp"`
}

// Placeholder builds the zeroed stand-in used by batch endpoints when the
// fetch for a symbol failed. Batch responses always carry one entry per
// supported symbol.
func Placeholder(symbol string) PriceSnapshot {
	return PriceSnapshot{Symbol: symbol, FetchedAt: time.Now()}
}

// CacheStats describes the current contents of the price cache.
type CacheStats struct {
	Entries int      `json:"entries"`
	Symbols []string `json:"symbols"`
}
