// Package telemetry exposes NexusLog's Prometheus metrics. All recording
// methods are safe on a nil *Metrics, which records nothing.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nexuslog"

// Metrics holds all NexusLog collectors.
type Metrics struct {
	registry *prometheus.Registry

	// Intake
	EntriesIngested        *prometheus.CounterVec
	ClassificationFailures prometheus.Counter
	CategoriesCreated      prometheus.Counter
	CategoryLimitFallbacks prometheus.Counter
	IntakeDuration         prometheus.Histogram

	// Telegram
	TelegramUpdates *prometheus.CounterVec

	// HTTP
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)
	m := &Metrics{registry: reg}

	m.EntriesIngested = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_ingested_total",
		Help:      "Entries persisted by the intake pipeline",
	}, []string{"source", "content_type"})

	m.ClassificationFailures = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classification_failures_total",
		Help:      "Classifier calls that failed and fell back to defaults",
	})

	m.CategoriesCreated = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "categories_created_total",
		Help:      "Categories created while resolving classifier suggestions",
	})

	m.CategoryLimitFallbacks = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_limit_fallbacks_total",
		Help:      "Suggestions filed under the default category because the top-level limit was reached",
	})

	m.IntakeDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "intake_duration_seconds",
		Help:      "Time to ingest one message, classification included",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
	})

	m.TelegramUpdates = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "telegram_updates_total",
		Help:      "Telegram updates received, by message kind",
	}, []string{"kind"})

	m.HTTPRequests = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served",
	}, []string{"method", "route", "status"})

	m.HTTPRequestDuration = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ---------------------------------------------------------------------------
// Recording helpers
// ---------------------------------------------------------------------------

// EntryIngested counts one persisted entry and observes the intake latency.
func (m *Metrics) EntryIngested(source, contentType string, took time.Duration) {
	if m == nil {
		return
	}
	m.EntriesIngested.WithLabelValues(source, contentType).Inc()
	m.IntakeDuration.Observe(took.Seconds())
}

// ClassificationFailed counts one classifier fallback.
func (m *Metrics) ClassificationFailed() {
	if m == nil {
		return
	}
	m.ClassificationFailures.Inc()
}

// CategoryCreated counts one category created during resolution.
func (m *Metrics) CategoryCreated() {
	if m == nil {
		return
	}
	m.CategoriesCreated.Inc()
}

// CategoryLimitReached counts one fallback to the default category.
func (m *Metrics) CategoryLimitReached() {
	if m == nil {
		return
	}
	m.CategoryLimitFallbacks.Inc()
}

// TelegramUpdate counts one received update of the given kind.
func (m *Metrics) TelegramUpdate(kind string) {
	if m == nil {
		return
	}
	m.TelegramUpdates.WithLabelValues(kind).Inc()
}

// HTTPRequest records one served request. route should be the matched
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) HTTPRequest(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(took.Seconds())
}
