package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the Enterprise Hub.
// Every helper is safe to call on a nil registry.
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Domain Metrics
	BusinessesCreatedTotal   prometheus.Counter
	RelationshipChangesTotal *prometheus.CounterVec
	AssessmentTransitions    *prometheus.CounterVec
	TrackingRecordsTotal     *prometheus.CounterVec
	LoginAttemptsTotal       *prometheus.CounterVec
}

// NewMetricsRegistry registers every metric on reg. The server passes
// prometheus.DefaultRegisterer; tests pass a fresh registry.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enterprisehub_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "enterprisehub_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "enterprisehub_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		// Database Metrics
		DBQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enterprisehub_db_queries_total",
				Help: "Total raw aggregate queries by name and outcome",
			},
			[]string{"query_type", "outcome"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "enterprisehub_db_query_duration_seconds",
				Help:    "Raw aggregate query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enterprisehub_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enterprisehub_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Domain Metrics
		BusinessesCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "enterprisehub_businesses_created_total",
				Help: "Total business profiles created",
			},
		),
		RelationshipChangesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enterprisehub_relationship_changes_total",
				Help: "Relationship assignments and unassignments by kind",
			},
			[]string{"kind", "action"},
		),
		AssessmentTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enterprisehub_assessment_transitions_total",
				Help: "Feasibility assessment status transitions",
			},
			[]string{"from", "to"},
		),
		TrackingRecordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enterprisehub_tracking_records_total",
				Help: "Tracking records recorded and verified",
			},
			[]string{"action"},
		),
		LoginAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enterprisehub_login_attempts_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *MetricsRegistry) ObserveQuery(queryType string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.DBQueriesTotal.WithLabelValues(queryType, outcome).Inc()
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(started).Seconds())
}

func (m *MetricsRegistry) ObserveCache(pattern string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHitsTotal.WithLabelValues(pattern).Inc()
		return
	}
	m.CacheMissesTotal.WithLabelValues(pattern).Inc()
}

func (m *MetricsRegistry) BusinessCreated() {
	if m == nil {
		return
	}
	m.BusinessesCreatedTotal.Inc()
}

func (m *MetricsRegistry) RelationshipChanged(kind, action string) {
	if m == nil {
		return
	}
	m.RelationshipChangesTotal.WithLabelValues(kind, action).Inc()
}

func (m *MetricsRegistry) AssessmentTransition(from, to string) {
	if m == nil {
		return
	}
	m.AssessmentTransitions.WithLabelValues(from, to).Inc()
}

func (m *MetricsRegistry) TrackingEvent(action string) {
	if m == nil {
		return
	}
	m.TrackingRecordsTotal.WithLabelValues(action).Inc()
}

func (m *MetricsRegistry) LoginAttempt(outcome string) {
	if m == nil {
		return
	}
	m.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
}
