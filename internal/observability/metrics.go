// Package observability holds the Prometheus instrumentation for the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the ingestion service.
type Metrics struct {
	IngestionsTotal     *prometheus.CounterVec // labels: source, outcome={created,reused,no_data,error}
	MappingDegradations *prometheus.CounterVec // labels: field
	RawPayloadsArchived prometheus.Counter
	UsersResolved       *prometheus.CounterVec // labels: matched={phone,display_name,created}

	// Alert poller metrics.
	AlertsRecorded     prometheus.Counter
	AlertPollDuration  prometheus.Histogram
	AlertPollerRunning prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		IngestionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "housekeep",
			Name:      "ingestions_total",
			Help:      "Property ingestion calls by source and outcome.",
		}, []string{"source", "outcome"}),
		MappingDegradations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "housekeep",
			Name:      "mapping_degradations_total",
			Help:      "Home fields dropped to absent because the provider value was unparsable.",
		}, []string{"field"}),
		RawPayloadsArchived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "housekeep",
			Name:      "raw_payloads_archived_total",
			Help:      "Verbatim provider payloads written to the archive.",
		}),
		UsersResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "housekeep",
			Name:      "users_resolved_total",
			Help:      "Identity resolutions by match kind.",
		}, []string{"matched"}),
		AlertsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "housekeep",
			Name:      "alerts_recorded_total",
			Help:      "New weather alerts attached to homes.",
		}),
		AlertPollDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "housekeep",
			Name:      "alert_poll_duration_seconds",
			Help:      "Duration of a complete alert polling cycle across all homes.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		AlertPollerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "housekeep",
			Name:      "alert_poller_running",
			Help:      "1 when the alert poller is active, 0 when shut down.",
		}),
	}

	prometheus.MustRegister(
		m.IngestionsTotal,
		m.MappingDegradations,
		m.RawPayloadsArchived,
		m.UsersResolved,
		m.AlertsRecorded,
		m.AlertPollDuration,
		m.AlertPollerRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		IngestionsTotal:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "housekeep", Name: "ingestions_total"}, []string{"source", "outcome"}),
		MappingDegradations: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "housekeep", Name: "mapping_degradations_total"}, []string{"field"}),
		RawPayloadsArchived: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "housekeep", Name: "raw_payloads_archived_total"}),
		UsersResolved:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "housekeep", Name: "users_resolved_total"}, []string{"matched"}),
		AlertsRecorded:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "housekeep", Name: "alerts_recorded_total"}),
		AlertPollDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "housekeep", Name: "alert_poll_duration_seconds"}),
		AlertPollerRunning:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "housekeep", Name: "alert_poller_running"}),
	}
}
