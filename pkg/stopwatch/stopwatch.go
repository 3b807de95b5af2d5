// Package stopwatch measures elapsed ticks with start, stop, read and trip
// (lap split) operations.
package stopwatch

import (
	"github.com/BYTE-6D65/ticktime/pkg/clock"
	"github.com/BYTE-6D65/ticktime/pkg/telemetry"
)

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithName sets the label used for metrics.
func WithName(name string) Option {
	return func(s *Stopwatch) { s.name = name }
}

// WithMetrics counts trips and records each trip duration.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Stopwatch) { s.metrics = m }
}

// Stopwatch accumulates running time read from a clock.Source.
// It is not safe for concurrent use.
//
// Trip behaves like Stop, Reset and Start in one step but keeps the trip
// count, which makes it convenient for timing loop iterations.
type Stopwatch struct {
	src     clock.Source
	name    string
	metrics *telemetry.Metrics

	start   clock.Tick
	total   clock.Tick
	running bool
	trips   int
}

// New creates a stopped stopwatch.
func New(src clock.Source, opts ...Option) *Stopwatch {
	s := &Stopwatch{src: src, name: "default"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins measuring. Starting a running stopwatch does nothing.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.start = s.src.Now()
	s.running = true
	s.trips++
	if s.metrics != nil {
		s.metrics.StopwatchTrips.WithLabelValues(s.name).Inc()
	}
}

// Reset stops the stopwatch and clears the total and trip count.
func (s *Stopwatch) Reset() {
	s.running = false
	s.start = 0
	s.total = 0
	s.trips = 0
}

// Stop halts measuring and returns the accumulated total.
func (s *Stopwatch) Stop() clock.Tick {
	if s.running {
		s.total += s.src.Now() - s.start
		s.running = false
	}
	return s.total
}

// Read returns the accumulated total, including the running period.
func (s *Stopwatch) Read() clock.Tick {
	if s.running {
		return s.total + (s.src.Now() - s.start)
	}
	return s.total
}

// Trip returns the time accumulated since the last trip (or start) and
// restarts measuring from now. A stopped stopwatch returns 0.
func (s *Stopwatch) Trip() clock.Tick {
	if !s.running {
		return 0
	}

	now := s.src.Now()
	ticks := s.total + (now - s.start)
	s.total = 0
	s.start = now
	s.trips++

	if s.metrics != nil {
		s.metrics.StopwatchTrips.WithLabelValues(s.name).Inc()
		s.metrics.TripDuration.WithLabelValues(s.name).Observe(clock.ToSeconds(s.src, ticks))
	}
	return ticks
}

// IsRunning reports whether the stopwatch is measuring.
func (s *Stopwatch) IsRunning() bool { return s.running }

// Trips returns the number of starts and trips since the last Reset.
func (s *Stopwatch) Trips() int { return s.trips }

// Source returns the tick source.
func (s *Stopwatch) Source() clock.Source { return s.src }

func (s *Stopwatch) StopSeconds() float64 { return clock.ToSeconds(s.src, s.Stop()) }
func (s *Stopwatch) StopMillis() float64  { return clock.ToMillis(s.src, s.Stop()) }
func (s *Stopwatch) StopMicros() float64  { return clock.ToMicros(s.src, s.Stop()) }

func (s *Stopwatch) ReadSeconds() float64 { return clock.ToSeconds(s.src, s.Read()) }
func (s *Stopwatch) ReadMillis() float64  { return clock.ToMillis(s.src, s.Read()) }
func (s *Stopwatch) ReadMicros() float64  { return clock.ToMicros(s.src, s.Read()) }

func (s *Stopwatch) TripSeconds() float64 { return clock.ToSeconds(s.src, s.Trip()) }
func (s *Stopwatch) TripMillis() float64  { return clock.ToMillis(s.src, s.Trip()) }
func (s *Stopwatch) TripMicros() float64  { return clock.ToMicros(s.src, s.Trip()) }

// AverageMillis returns ReadMillis divided by the trip count, or 0 when no
// trip has been counted.
func (s *Stopwatch) AverageMillis() float64 {
	if s.trips <= 0 {
		return 0
	}
	return s.ReadMillis() / float64(s.trips)
}
