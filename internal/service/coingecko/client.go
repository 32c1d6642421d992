package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"TradePulse/internal/domain/models"
	drepo "TradePulse/internal/domain/repository"
	xhttp "TradePulse/pkg/http"
)

// coinIDs maps supported tickers to CoinGecko identifiers. A symbol outside
// this map is an unknown symbol.
var coinIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"SOL":  "solana",
	"PAXG": "pax-gold",
}

// Client implements a PriceSource backed by the CoinGecko simple-price API.
type Client struct {
	baseURL string
	apiKey  string
	http    *xhttp.Client
}

// New creates a new CoinGecko PriceSource.
func New(baseURL, apiKey string, timeout time.Duration) drepo.PriceSource {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// Fetch retrieves the current snapshot for one normalized symbol.
func (c *Client) Fetch(ctx context.Context, symbol string) (models.PriceSnapshot, error) {
	id, ok := coinIDs[symbol]
	if !ok {
		return models.PriceSnapshot{}, fmt.Errorf("%w: %s", models.ErrUnknownSymbol, symbol)
	}

	opts := &xhttp.RequestOptions{
		Method: http.MethodGet,
		URL:    c.baseURL + "/api/v3/simple/price",
		QueryParams: map[string]string{
			"ids":                 id,
			"vs_currencies":       "usd",
			"include_24hr_change": "true",
			"include_market_cap":  "true",
			"include_24hr_vol":    "true",
		},
	}
	if c.apiKey != "" {
		opts.Headers = map[string]string{"x-cg-demo-api-key": c.apiKey}
	}

	resp, err := c.http.SendRequest(ctx, opts)
	if err != nil {
		return models.PriceSnapshot{}, fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.PriceSnapshot{}, fmt.Errorf("%w: status %d: %s", models.ErrUpstreamUnavailable, resp.StatusCode, body)
	}

	// Shape: {"bitcoin":{"usd":1.0,"usd_market_cap":...,"usd_24h_vol":...,"usd_24h_change":...}}
	var payload map[string]map[string]*float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.PriceSnapshot{}, fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}

	fields, ok := payload[id]
	if !ok {
		return models.PriceSnapshot{}, fmt.Errorf("%w: no data for %s", models.ErrMalformedPayload, id)
	}
	price := fields["usd"]
	if price == nil {
		return models.PriceSnapshot{}, fmt.Errorf("%w: missing usd price for %s", models.ErrMalformedPayload, id)
	}

	return models.PriceSnapshot{
		Symbol:    symbol,
		Price:     *price,
		Change24h: floatOrZero(fields["usd_24h_change"]),
		MarketCap: floatOrZero(fields["usd_market_cap"]),
		Volume24h: floatOrZero(fields["usd_24h_vol"]),
		FetchedAt: time.Now(),
	}, nil
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
