// Package metrics provides Prometheus metrics for the Pavilion analytics service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Dataset metrics - immutable after load, refreshed for visibility
	datasetMatches      prometheus.Gauge
	datasetDeliveries   prometheus.Gauge
	datasetSeasons      prometheus.Gauge
	datasetLoadDuration prometheus.Gauge
	datasetOrphanRows   prometheus.Counter

	// View metrics - aggregate view assembly
	viewBuilds       *prometheus.CounterVec
	viewBuildLatency *prometheus.HistogramVec
	viewCacheHits    prometheus.Counter
	viewEmptyResults *prometheus.CounterVec

	// Chart rendering metrics
	chartRenders       prometheus.Counter
	chartRenderLatency prometheus.Histogram
	chartRenderErrors  prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pavilion",
		subsystem:        "analytics",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.datasetMatches = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_matches",
		Help:      "Number of match records loaded",
	})

	m.datasetDeliveries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_deliveries",
		Help:      "Number of delivery records loaded",
	})

	m.datasetSeasons = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_seasons",
		Help:      "Number of distinct seasons in the dataset",
	})

	m.datasetLoadDuration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_duration_milliseconds",
		Help:      "Duration of the startup dataset load in milliseconds",
	})

	m.datasetOrphanRows = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_orphan_rows_total",
		Help:      "Delivery rows dropped because they reference no known match",
	})

	m.viewBuilds = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "view_builds_total",
			Help:      "Total number of aggregate view builds by view name",
		},
		[]string{"view"},
	)

	m.viewBuildLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "view_build_latency_milliseconds",
			Help:      "Histogram of view assembly latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"view"},
	)

	m.viewCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_cache_hits_total",
		Help:      "Total number of view requests served from the cache",
	})

	m.viewEmptyResults = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "view_empty_results_total",
			Help:      "Total number of view selections producing an empty aggregate",
		},
		[]string{"view"},
	)

	m.chartRenders = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "chart_renders_total",
		Help:      "Total number of PNG chart renders",
	})

	m.chartRenderLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "chart_render_latency_milliseconds",
		Help:      "Histogram of PNG chart render latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.chartRenderErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "chart_render_errors_total",
		Help:      "Total number of failed PNG chart renders",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "Histogram of HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of error responses by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Current number of goroutines",
	})
}

// UpdateDatasetCounts sets the dataset size gauges.
func UpdateDatasetCounts(matches, deliveries, seasons int) {
	globalManager.datasetMatches.Set(float64(matches))
	globalManager.datasetDeliveries.Set(float64(deliveries))
	globalManager.datasetSeasons.Set(float64(seasons))
}

// RecordDatasetLoadDuration records how long the startup load took.
func RecordDatasetLoadDuration(ms float64) {
	globalManager.datasetLoadDuration.Set(ms)
}

// RecordDatasetOrphanRows counts dropped delivery rows.
func RecordDatasetOrphanRows(n int) {
	globalManager.datasetOrphanRows.Add(float64(n))
}

// RecordViewBuild counts a view assembly.
func RecordViewBuild(view string) {
	globalManager.viewBuilds.WithLabelValues(view).Inc()
}

// RecordViewBuildLatency observes view assembly latency.
func RecordViewBuildLatency(view string, ms float64) {
	globalManager.viewBuildLatency.WithLabelValues(view).Observe(ms)
}

// RecordViewCacheHit counts a view served from the cache.
func RecordViewCacheHit() {
	globalManager.viewCacheHits.Inc()
}

// RecordViewEmptyResult counts a selection that produced no rows.
func RecordViewEmptyResult(view string) {
	globalManager.viewEmptyResults.WithLabelValues(view).Inc()
}

// RecordChartRender counts a PNG chart render.
func RecordChartRender() {
	globalManager.chartRenders.Inc()
}

// RecordChartRenderLatency observes PNG render latency.
func RecordChartRenderLatency(ms float64) {
	globalManager.chartRenderLatency.Observe(ms)
}

// RecordChartRenderError counts a failed PNG render.
func RecordChartRenderError() {
	globalManager.chartRenderErrors.Inc()
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// RecordErrorByEndpoint counts an error response.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry used for /healthz exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
