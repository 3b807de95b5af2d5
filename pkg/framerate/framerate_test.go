package framerate

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BYTE-6D65/ticktime/pkg/clock"
	"github.com/BYTE-6D65/ticktime/pkg/telemetry"
)

func TestCounter_NoRateBeforeOneSecond(t *testing.T) {
	src := clock.NewManualClock(1000)
	c := New(src)

	for i := 0; i < 10; i++ {
		src.Advance(99)
		c.MarkFrame()
	}

	rate, ok := c.FrameRate()
	assert.False(t, ok)
	assert.Zero(t, rate)
	assert.Zero(t, c.Seconds())
}

func TestCounter_ExactSecond(t *testing.T) {
	src := clock.NewManualClock(600)
	c := New(src)

	for i := 0; i < 60; i++ {
		src.Advance(10)
		c.MarkFrame()
	}

	rate, ok := c.FrameRate()
	assert.True(t, ok)
	assert.Equal(t, 60.0, rate)
	assert.Equal(t, uint64(1), c.Seconds())
}

func TestCounter_LongWindowScalesDown(t *testing.T) {
	src := clock.NewManualClock(1000)
	c := New(src)

	// 30 frames spread over two seconds
	for i := 0; i < 30; i++ {
		if i == 29 {
			src.Advance(2000 - 29*10)
		} else {
			src.Advance(10)
		}
		c.MarkFrame()
	}

	rate, ok := c.FrameRate()
	assert.True(t, ok)
	assert.Equal(t, 15.0, rate)
}

func TestCounter_ConsecutiveWindows(t *testing.T) {
	src := clock.NewManualClock(100)
	c := New(src)

	for i := 0; i < 10; i++ {
		src.Advance(10)
		c.MarkFrame()
	}
	for i := 0; i < 20; i++ {
		src.Advance(5)
		c.MarkFrame()
	}

	rate, ok := c.FrameRate()
	assert.True(t, ok)
	assert.Equal(t, 20.0, rate)
	assert.Equal(t, uint64(2), c.Seconds())
}

func TestCounter_Restart(t *testing.T) {
	src := clock.NewManualClock(100)
	c := New(src)

	for i := 0; i < 10; i++ {
		src.Advance(10)
		c.MarkFrame()
	}
	_, ok := c.FrameRate()
	assert.True(t, ok)

	c.Restart()
	rate, ok := c.FrameRate()
	assert.False(t, ok)
	assert.Zero(t, rate)

	// Ticks before Restart don't count toward the new window
	src.Advance(50)
	c.MarkFrame()
	_, ok = c.FrameRate()
	assert.False(t, ok)
}

func TestCounter_Metrics(t *testing.T) {
	m := telemetry.InitMetrics(prometheus.NewRegistry())
	src := clock.NewManualClock(600)
	c := New(src, WithName("render"), WithMetrics(m))

	for i := 0; i < 60; i++ {
		src.Advance(10)
		c.MarkFrame()
	}

	assert.Equal(t, 60.0, testutil.ToFloat64(m.FramesTotal.WithLabelValues("render")))
	assert.Equal(t, 60.0, testutil.ToFloat64(m.FrameRate.WithLabelValues("render")))
}

func TestCounter_Replay60FPS(t *testing.T) {
	intervals := make([]time.Duration, 120)
	for i := range intervals {
		intervals[i] = 16_666_667 * time.Nanosecond
	}
	src, err := clock.NewReplay(10_000_000, intervals)
	require.NoError(t, err)

	c := New(src)
	for src.Step() {
		c.MarkFrame()
	}

	// The first window closes on frame 61; the remaining 59 frames are short
	// of a second.
	rate, ok := c.FrameRate()
	assert.True(t, ok)
	assert.InDelta(t, 60.0, rate, 0.01)
	assert.Equal(t, uint64(1), c.Seconds())
}

func TestCounter_ReplayMixedPacing(t *testing.T) {
	intervals := make([]time.Duration, 0, 75)
	for i := 0; i < 50; i++ {
		intervals = append(intervals, 10*time.Millisecond)
	}
	for i := 0; i < 25; i++ {
		intervals = append(intervals, 20*time.Millisecond)
	}
	src, err := clock.NewReplay(1000, intervals)
	require.NoError(t, err)

	c := New(src)
	for src.Step() {
		c.MarkFrame()
	}

	rate, ok := c.FrameRate()
	assert.True(t, ok)
	assert.Equal(t, 75.0, rate)
}
