package clock

import "time"

// Tick is a reading of a monotonic counter. Its unit is defined by the
// Source that produced it; see Source.TicksPerSecond.
type Tick int64

// Source provides monotonic tick readings.
// Readings from different sources are not comparable.
type Source interface {
	// Now returns the current tick count
	Now() Tick

	// TicksPerSecond returns the fixed resolution of the source
	TicksPerSecond() int64
}

// SystemClock uses the Go runtime's monotonic clock with nanosecond ticks.
type SystemClock struct {
	epoch time.Time // Cached at creation to provide stable monotonic base
}

// NewSystemClock creates a new SystemClock anchored at the current time.
func NewSystemClock() *SystemClock {
	return &SystemClock{
		epoch: time.Now(),
	}
}

// Now returns the nanoseconds elapsed since the clock was created.
func (s *SystemClock) Now() Tick {
	// Use time.Since which leverages monotonic clock internally
	return Tick(time.Since(s.epoch))
}

// TicksPerSecond returns 1e9.
func (s *SystemClock) TicksPerSecond() int64 {
	return int64(time.Second)
}

// Since returns the wall duration elapsed on src since t.
func Since(src Source, t Tick) time.Duration {
	return ToDuration(src, src.Now()-t)
}
