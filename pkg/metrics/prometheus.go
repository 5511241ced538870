// Package metrics provides Prometheus metrics for the tempmap heat-map service.
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

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Fetch stage
	fetchTotal    *prometheus.CounterVec
	fetchDuration prometheus.Histogram

	// Dataset shape
	datasetRecords prometheus.Gauge
	datasetYears   prometheus.Gauge

	// Render stage
	renderDuration prometheus.Histogram
	cellsRendered  prometheus.Gauge
	cellsByBucket  *prometheus.GaugeVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tempmap",
		subsystem:        "heatmap",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// Enabled reports whether metrics are recorded.
func (m *Manager) Enabled() bool { return m.enabled }

// RefreshInterval returns the interval for background gauge updates.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

func (m *Manager) opts(name, help string) (string, string, string, string, prometheus.Labels) {
	return m.namespace, m.subsystem, name, help, prometheus.Labels(m.customLabels)
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	ns, sub, n, h, labels := m.opts(name, help)
	return prometheus.CounterOpts{Namespace: ns, Subsystem: sub, Name: n, Help: h, ConstLabels: labels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	ns, sub, n, h, labels := m.opts(name, help)
	return prometheus.GaugeOpts{Namespace: ns, Subsystem: sub, Name: n, Help: h, ConstLabels: labels}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	ns, sub, n, h, labels := m.opts(name, help)
	return prometheus.HistogramOpts{Namespace: ns, Subsystem: sub, Name: n, Help: h, ConstLabels: labels, Buckets: buckets}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)

	m.fetchTotal = auto.NewCounterVec(
		m.counterOpts("fetch_total", "Total number of dataset fetches by outcome"),
		[]string{"outcome"},
	)
	m.fetchDuration = auto.NewHistogram(
		m.histogramOpts("fetch_duration_milliseconds", "Dataset fetch duration in milliseconds",
			[]float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000}),
	)

	m.datasetRecords = auto.NewGauge(m.gaugeOpts("dataset_records", "Number of monthly records in the loaded dataset"))
	m.datasetYears = auto.NewGauge(m.gaugeOpts("dataset_years", "Number of distinct years in the loaded dataset"))

	m.renderDuration = auto.NewHistogram(
		m.histogramOpts("render_duration_milliseconds", "Chart render duration in milliseconds", m.histogramBuckets),
	)
	m.cellsRendered = auto.NewGauge(m.gaugeOpts("cells_rendered", "Number of cells in the rendered chart"))
	m.cellsByBucket = auto.NewGaugeVec(
		m.gaugeOpts("cells_by_bucket", "Number of rendered cells per color bucket"),
		[]string{"color"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Total errors by component and type"),
		[]string{"component", "error_type"},
	)
	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total errors by type and severity"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total errors by endpoint, method and type"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.errorLatency = auto.NewHistogramVec(
		m.histogramOpts("error_latency_milliseconds", "Latency of operations that ended in an error", m.histogramBuckets),
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(
		m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
			[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}),
	)
}

// Fetch Metrics Functions.

// RecordFetch records one dataset fetch with its outcome and duration.
func RecordFetch(outcome string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.fetchTotal.WithLabelValues(outcome).Inc()
	globalManager.fetchDuration.Observe(durationMs)
}

// UpdateDatasetShape sets the loaded dataset's record and year counts.
func UpdateDatasetShape(records, years int) {
	globalManager.datasetRecords.Set(float64(records))
	globalManager.datasetYears.Set(float64(years))
}

// Render Metrics Functions.

// RecordRender records a render pass and the resulting cell distribution.
func RecordRender(durationMs float64, cells int, byBucket map[string]int) {
	if !globalManager.enabled {
		return
	}
	globalManager.renderDuration.Observe(durationMs)
	globalManager.cellsRendered.Set(float64(cells))
	for color, n := range byBucket {
		globalManager.cellsByBucket.WithLabelValues(color).Set(float64(n))
	}
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// RefreshInterval returns the interval for background system metric updates.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
