// Package framerate estimates frames per second from a tick source.
//
// Call MarkFrame once per frame. Every time at least one second has elapsed
// since the previous estimate, the counter computes a new rate from the
// frames marked in that window.
package framerate

import (
	"github.com/BYTE-6D65/ticktime/pkg/clock"
	"github.com/BYTE-6D65/ticktime/pkg/telemetry"
)

// Option configures a Counter.
type Option func(*Counter)

// WithName sets the label used for metrics.
func WithName(name string) Option {
	return func(c *Counter) { c.name = name }
}

// WithMetrics exports frames and the latest rate under the counter's name.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Counter) { c.metrics = m }
}

// Counter measures the frame rate. It is not safe for concurrent use.
type Counter struct {
	src     clock.Source
	name    string
	metrics *telemetry.Metrics

	rate    float64
	seconds uint64
	frames  uint64
	last    clock.Tick
}

// New creates a counter whose first window starts now.
func New(src clock.Source, opts ...Option) *Counter {
	c := &Counter{src: src, name: "default"}
	for _, opt := range opts {
		opt(c)
	}
	c.last = src.Now()
	return c
}

// Restart discards all state and starts a new window.
func (c *Counter) Restart() {
	c.rate = 0
	c.seconds = 0
	c.frames = 0
	c.last = c.src.Now()
}

// MarkFrame records one frame.
func (c *Counter) MarkFrame() {
	c.frames++
	if c.metrics != nil {
		c.metrics.FramesTotal.WithLabelValues(c.name).Inc()
	}

	now := c.src.Now()
	tps := c.src.TicksPerSecond()
	elapsed := now - c.last
	if int64(elapsed) < tps {
		return
	}

	c.rate = float64(c.frames) * float64(tps) / float64(elapsed)
	c.last = now
	c.frames = 0
	c.seconds++

	if c.metrics != nil {
		c.metrics.FrameRate.WithLabelValues(c.name).Set(c.rate)
	}
}

// FrameRate returns the latest estimate and whether at least one full second
// has been observed. Before that the rate is 0.
func (c *Counter) FrameRate() (float64, bool) {
	return c.rate, c.seconds > 0
}

// Seconds returns how many estimation windows have completed.
func (c *Counter) Seconds() uint64 {
	return c.seconds
}
