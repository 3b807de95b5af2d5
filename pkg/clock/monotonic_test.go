package clock

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BYTE-6D65/ticktime/pkg/telemetry"
)

func TestMonotonic_PassThrough(t *testing.T) {
	src := NewManualClock(1000)
	mono := NewMonotonic(src)

	src.Set(10)
	if got := mono.Now(); got != 10 {
		t.Errorf("Expected 10, got %d", got)
	}

	src.Set(10)
	if got := mono.Now(); got != 10 {
		t.Errorf("Equal readings should not be clamped, got %d", got)
	}

	src.Advance(5)
	if got := mono.Now(); got != 15 {
		t.Errorf("Expected 15, got %d", got)
	}

	if mono.Regressions() != 0 {
		t.Errorf("Expected no regressions, got %d", mono.Regressions())
	}
	if mono.TicksPerSecond() != 1000 {
		t.Errorf("Expected 1000 ticks/s, got %d", mono.TicksPerSecond())
	}
}

func TestMonotonic_ClampsRegression(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	reg := prometheus.NewRegistry()
	metrics := telemetry.InitMetrics(reg)

	src := NewManualClock(1000)
	mono := NewMonotonic(src,
		WithName("test"),
		WithLogger(zap.New(core)),
		WithMetrics(metrics),
	)

	src.Set(100)
	mono.Now()

	src.Set(40)
	if got := mono.Now(); got != 101 {
		t.Errorf("Expected regression clamped to 101, got %d", got)
	}

	src.Set(50)
	if got := mono.Now(); got != 102 {
		t.Errorf("Expected second regression clamped to 102, got %d", got)
	}

	src.Set(200)
	if got := mono.Now(); got != 200 {
		t.Errorf("Expected recovery to raw reading 200, got %d", got)
	}

	if mono.Regressions() != 2 {
		t.Errorf("Expected 2 regressions, got %d", mono.Regressions())
	}

	if logs.FilterMessage("clock regression clamped").Len() != 2 {
		t.Errorf("Expected 2 regression warnings, got %d", logs.Len())
	}

	if got := testutil.ToFloat64(metrics.ClockRegressions.WithLabelValues("test")); got != 2 {
		t.Errorf("Expected regression counter 2, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.ClockReads.WithLabelValues("test")); got != 4 {
		t.Errorf("Expected read counter 4, got %v", got)
	}
}

func TestMonotonic_FirstReadingNotClamped(t *testing.T) {
	src := NewManualClock(1000)
	src.Set(-50)
	mono := NewMonotonic(src)

	if got := mono.Now(); got != -50 {
		t.Errorf("First reading should pass through, got %d", got)
	}
}

func TestMonotonic_DefaultName(t *testing.T) {
	mono := NewMonotonic(NewManualClock(0))
	if mono.Name() != "guarded" {
		t.Errorf("Expected default name, got %q", mono.Name())
	}
	if mono.TicksPerSecond() != 1_000_000_000 {
		t.Errorf("Expected nanosecond default, got %d", mono.TicksPerSecond())
	}
}
