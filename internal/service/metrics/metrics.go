package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes and cache lookup results used as metric label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	CacheHit     = "hit"
	CacheMiss    = "miss"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal  *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	cacheLookups  *prometheus.CounterVec
	lastPrice     *prometheus.GaugeVec
	alertsTotal   *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradepulse_price_fetches_total",
				Help: "Total number of upstream price fetches",
			},
			[]string{"symbol", "outcome"},
		),
		fetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tradepulse_price_fetch_duration_seconds",
				Help:    "Duration of upstream price fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradepulse_cache_lookups_total",
				Help: "Price cache lookups by result",
			},
			[]string{"result"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tradepulse_last_price",
				Help: "Last fetched price for a symbol",
			},
			[]string{"symbol"},
		),
		alertsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradepulse_alerts_received_total",
				Help: "Webhook alerts recorded per symbol",
			},
			[]string{"symbol"},
		),
	}
}

// RecordFetch records an upstream fetch attempt.
func (r *Recorder) RecordFetch(symbol, outcome string) {
	r.fetchesTotal.WithLabelValues(symbol, outcome).Inc()
}

// RecordFetchLatency records upstream fetch latency in seconds.
func (r *Recorder) RecordFetchLatency(seconds float64) {
	r.fetchDuration.Observe(seconds)
}

// RecordCacheLookup records a cache hit or miss.
func (r *Recorder) RecordCacheLookup(result string) {
	r.cacheLookups.WithLabelValues(result).Inc()
}

// RecordLastPrice records the last fetched price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordAlert records one received webhook alert.
func (r *Recorder) RecordAlert(symbol string) {
	r.alertsTotal.WithLabelValues(symbol).Inc()
}
