package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeStale   = "stale"
	OutcomeInvalid = "invalid"
)

// Metrics holds the converter's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	GatewayRequestsTotal     *prometheus.CounterVec
	GatewayRequestDuration   *prometheus.HistogramVec
	ConversionsTotal         *prometheus.CounterVec
	ComparisonRefreshesTotal *prometheus.CounterVec
	PersistenceFailuresTotal *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GatewayRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_requests_total",
				Help: "Requests sent to the exchange rate provider",
			},
			[]string{"operation", "outcome"},
		),
		GatewayRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_request_duration_seconds",
				Help:    "Latency of exchange rate provider requests",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"operation"},
		),
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Conversion attempts by outcome",
			},
			[]string{"outcome"},
		),
		ComparisonRefreshesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comparison_refreshes_total",
				Help: "Comparison dataset refreshes by outcome",
			},
			[]string{"outcome"},
		),
		PersistenceFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persistence_failures_total",
				Help: "Swallowed key-value store failures",
			},
			[]string{"key"},
		),
	}
}

// ObserveGateway records one provider request.
func (m *Metrics) ObserveGateway(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.GatewayRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.GatewayRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Conversion counts a conversion attempt.
func (m *Metrics) Conversion(outcome string) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(outcome).Inc()
}

// ComparisonRefresh counts a comparison refresh.
func (m *Metrics) ComparisonRefresh(outcome string) {
	if m == nil {
		return
	}
	m.ComparisonRefreshesTotal.WithLabelValues(outcome).Inc()
}

// PersistenceFailure counts a store failure that was downgraded to a log line.
func (m *Metrics) PersistenceFailure(key string) {
	if m == nil {
		return
	}
	m.PersistenceFailuresTotal.WithLabelValues(key).Inc()
}
