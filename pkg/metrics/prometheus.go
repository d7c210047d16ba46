// Package metrics provides Prometheus metrics for the Podium leaderboard
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ingestion metrics
	rowsParsed         prometheus.Counter
	achievementsParsed *prometheus.CounterVec
	studentsTotal      prometheus.Gauge

	// Leaderboard metrics
	leaderboardGenerations prometheus.Counter
	generationDuration     prometheus.Histogram
	leaderboardEntries     prometheus.Gauge

	// Snapshot metrics
	snapshotWrites      prometheus.Counter
	snapshotWriteErrors prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
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
		namespace:        "podium",
		subsystem:        "leaderboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsParsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_parsed_total",
		Help:      "Total number of tournament rows ingested from the workbook",
	})

	m.achievementsParsed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "achievements_parsed_total",
			Help:      "Total number of achievements extracted, by type",
		},
		[]string{"type"},
	)

	m.studentsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "students_total",
		Help:      "Number of distinct students in the roster",
	})

	m.leaderboardGenerations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "generations_total",
		Help:      "Total number of leaderboard generations",
	})

	m.generationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "generation_duration_milliseconds",
		Help:      "Histogram of leaderboard generation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.leaderboardEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entries",
		Help:      "Number of students on the most recently generated leaderboard",
	})

	m.snapshotWrites = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_writes_total",
		Help:      "Total number of weekly snapshots written",
	})

	m.snapshotWriteErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_write_errors_total",
		Help:      "Total number of failed snapshot writes",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// GetRegistry returns the registry metrics are exposed from.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers operating on the global manager.

// RecordRowParsed counts one ingested tournament row.
func RecordRowParsed() { globalManager.rowsParsed.Inc() }

// RecordAchievementParsed counts one extracted achievement by type.
func RecordAchievementParsed(achievementType string) {
	globalManager.achievementsParsed.WithLabelValues(achievementType).Inc()
}

// UpdateStudentsTotal sets the roster size gauge.
func UpdateStudentsTotal(n int) { globalManager.studentsTotal.Set(float64(n)) }

// RecordLeaderboardGeneration counts one generation and observes duration.
func RecordLeaderboardGeneration(durationMs float64) {
	globalManager.leaderboardGenerations.Inc()
	globalManager.generationDuration.Observe(durationMs)
}

// UpdateLeaderboardEntries sets the size of the last generated leaderboard.
func UpdateLeaderboardEntries(n int) { globalManager.leaderboardEntries.Set(float64(n)) }

// RecordSnapshotWrite counts one persisted weekly snapshot.
func RecordSnapshotWrite() { globalManager.snapshotWrites.Inc() }

// RecordSnapshotWriteError counts one failed snapshot write.
func RecordSnapshotWriteError() { globalManager.snapshotWriteErrors.Inc() }

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}
