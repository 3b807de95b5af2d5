package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for ticktime.
type Metrics struct {
	// Clock Metrics
	ClockRegressions *prometheus.CounterVec
	ClockReads       *prometheus.CounterVec

	// Frame Rate Metrics
	FramesTotal *prometheus.CounterVec
	FrameRate   *prometheus.GaugeVec

	// Stopwatch Metrics
	StopwatchTrips *prometheus.CounterVec
	TripDuration   *prometheus.HistogramVec
	LapsRecorded   *prometheus.CounterVec

	// Calendar Metrics
	CalendarErrors *prometheus.CounterVec
}

var (
	defaultMetrics *Metrics
)

// InitMetrics initializes the Prometheus metrics.
// This should be called once at startup before any metrics are recorded.
func InitMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	// Trip buckets span a busy frame up to a slow human lap
	// Buckets: 1ms, 5ms, 10ms, 16ms, 33ms, 50ms, 100ms, 250ms, 500ms, 1s, 2.5s, 5s, 10s, 30s, 60s
	tripBuckets := []float64{
		0.001, // 1ms
		0.005, // 5ms
		0.01,  // 10ms
		0.016, // 16ms (60 fps frame)
		0.033, // 33ms (30 fps frame)
		0.05,  // 50ms
		0.1,   // 100ms
		0.25,  // 250ms
		0.5,   // 500ms
		1,     // 1s
		2.5,   // 2.5s
		5,     // 5s
		10,    // 10s
		30,    // 30s
		60,    // 60s
	}

	m := &Metrics{
		// Clock Metrics
		ClockRegressions: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticktime_clock_regressions_total",
				Help: "Number of tick readings that went backwards and were clamped",
			},
			[]string{"source"},
		),

		ClockReads: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticktime_clock_reads_total",
				Help: "Number of tick readings taken through a monotonic guard",
			},
			[]string{"source"},
		),

		// Frame Rate Metrics
		FramesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticktime_frames_total",
				Help: "Total number of frames marked",
			},
			[]string{"counter"},
		),

		FrameRate: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ticktime_frame_rate",
				Help: "Most recent frames-per-second estimate",
			},
			[]string{"counter"},
		),

		// Stopwatch Metrics
		StopwatchTrips: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticktime_stopwatch_trips_total",
				Help: "Number of stopwatch trips (starts and lap splits)",
			},
			[]string{"stopwatch"},
		),

		TripDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ticktime_stopwatch_trip_duration_seconds",
				Help:    "Time measured by each stopwatch trip",
				Buckets: tripBuckets,
			},
			[]string{"stopwatch"},
		),

		LapsRecorded: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticktime_laps_recorded_total",
				Help: "Number of laps written to a lap recorder",
			},
			[]string{"recorder"},
		),

		// Calendar Metrics
		CalendarErrors: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticktime_calendar_errors_total",
				Help: "Calendar operations rejected with a range or syntax error",
			},
			[]string{"op"},
		),
	}

	defaultMetrics = m
	return m
}

// Default returns the default metrics instance.
// If InitMetrics hasn't been called, it will initialize with the default registry.
func Default() *Metrics {
	if defaultMetrics == nil {
		return InitMetrics(nil)
	}
	return defaultMetrics
}
