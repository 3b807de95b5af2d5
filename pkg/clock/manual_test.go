package clock

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	clk := NewManualClock(1000)

	if clk.Now() != 0 {
		t.Errorf("Expected initial reading 0, got %d", clk.Now())
	}

	clk.Advance(250)
	clk.AdvanceDuration(1500 * time.Millisecond)
	if clk.Now() != 1750 {
		t.Errorf("Expected 1750, got %d", clk.Now())
	}

	clk.Set(5)
	if clk.Now() != 5 {
		t.Errorf("Expected Set to move backwards to 5, got %d", clk.Now())
	}
}

func TestManualClock_DefaultResolution(t *testing.T) {
	clk := NewManualClock(0)
	if clk.TicksPerSecond() != int64(time.Second) {
		t.Errorf("Expected nanosecond ticks, got %d per second", clk.TicksPerSecond())
	}
}

func TestSources_Interface(t *testing.T) {
	var _ Source = NewManualClock(0)
	var _ Source = NewMonotonic(NewSystemClock())
	var _ Source = (*Replay)(nil)
}
