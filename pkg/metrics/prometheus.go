package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	quoteFetches *prometheus.CounterVec
	emailsTotal  *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	lastPrice    *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		quoteFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketlens_quote_fetches_total",
				Help: "Quote fetch attempts by outcome (live or fallback)",
			},
			[]string{"symbol", "outcome"},
		),
		emailsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketlens_emails_total",
				Help: "Email dispatch attempts by result",
			},
			[]string{"result"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketlens_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "marketlens_last_price",
				Help: "Last live price observed for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketlens_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetchOutcome records a quote fetch result. Degraded fetches are
// invisible to clients, so this is the operator's only view of them.
func (r *Recorder) RecordFetchOutcome(symbol string, live bool) {
	outcome := "fallback"
	if live {
		outcome = "live"
	}
	r.quoteFetches.WithLabelValues(symbol, outcome).Inc()
}

// RecordEmailResult records an email dispatch result.
func (r *Recorder) RecordEmailResult(sent bool) {
	result := "failed"
	if sent {
		result = "sent"
	}
	r.emailsTotal.WithLabelValues(result).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPrice records the last live price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
