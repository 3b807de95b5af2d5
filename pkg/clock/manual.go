package clock

import (
	"sync"
	"time"
)

// ManualClock is a Source whose reading only changes when told to.
type ManualClock struct {
	mu  sync.Mutex
	tps int64
	now Tick
}

// NewManualClock creates a ManualClock at tick 0.
// A non-positive ticksPerSecond selects nanosecond ticks.
func NewManualClock(ticksPerSecond int64) *ManualClock {
	if ticksPerSecond <= 0 {
		ticksPerSecond = int64(time.Second)
	}
	return &ManualClock{tps: ticksPerSecond}
}

// Now returns the current reading.
func (m *ManualClock) Now() Tick {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// TicksPerSecond returns the resolution given to NewManualClock.
func (m *ManualClock) TicksPerSecond() int64 {
	return m.tps
}

// Set moves the reading to t. Moving backwards is allowed.
func (m *ManualClock) Set(t Tick) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the reading forward by n ticks.
func (m *ManualClock) Advance(n Tick) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += n
}

// AdvanceDuration moves the reading forward by d.
func (m *ManualClock) AdvanceDuration(d time.Duration) {
	m.Advance(FromDuration(m, d))
}
