package models

import "errors"

// Domain error kinds. Callers classify with errors.Is; the handler layer
// maps them onto HTTP statuses (400 for validation, 503 for upstream).
var (
	// ErrUnknownSymbol means the symbol could not be mapped to an upstream
	// price-source identifier.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrUnsupportedSymbol means the symbol is outside the fixed asset
	// whitelist (webhook and explain validation).
	ErrUnsupportedSymbol = errors.New("unsupported symbol")

	// ErrUpstreamUnavailable covers network errors, timeouts, and
	// non-success statuses from the price source.
	ErrUpstreamUnavailable = errors.New("price source unavailable")

	// ErrMalformedPayload means the upstream response did not have the
	// expected JSON shape or was missing a required field.
	ErrMalformedPayload = errors.New("malformed upstream payload")
)
