package clock

import (
	"sync"

	"go.uber.org/zap"
)

// Monotonic wraps a Source and guarantees that readings never go backwards.
// A reading below the previous one is replaced by previous+1, counted,
// logged and exported as ticktime_clock_regressions_total.
//
// Hardware counters can step back on some multi-core systems; callers that
// subtract readings rely on this guard.
type Monotonic struct {
	src  Source
	opts options

	mu          sync.Mutex
	last        Tick
	seen        bool
	regressions uint64
}

// NewMonotonic wraps src in a monotonic guard.
func NewMonotonic(src Source, opts ...Option) *Monotonic {
	return &Monotonic{
		src:  src,
		opts: buildOptions("guarded", opts),
	}
}

// Now returns the current reading, clamped so it is never below the last one.
func (m *Monotonic) Now() Tick {
	raw := m.src.Now()

	m.mu.Lock()
	now := raw
	regressed := m.seen && now < m.last
	if regressed {
		now = m.last + 1
		m.regressions++
	}
	prev := m.last
	m.last = now
	m.seen = true
	m.mu.Unlock()

	if m.opts.metrics != nil {
		m.opts.metrics.ClockReads.WithLabelValues(m.opts.name).Inc()
		if regressed {
			m.opts.metrics.ClockRegressions.WithLabelValues(m.opts.name).Inc()
		}
	}
	if regressed {
		m.opts.logger.Warn("clock regression clamped",
			zap.String("source", m.opts.name),
			zap.Int64("previous", int64(prev)),
			zap.Int64("raw", int64(raw)),
			zap.Int64("clamped", int64(now)),
		)
	}
	return now
}

// TicksPerSecond returns the resolution of the wrapped source.
func (m *Monotonic) TicksPerSecond() int64 {
	return m.src.TicksPerSecond()
}

// Regressions returns how many readings have been clamped.
func (m *Monotonic) Regressions() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regressions
}

// Name returns the source label.
func (m *Monotonic) Name() string {
	return m.opts.name
}
