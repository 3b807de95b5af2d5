package clock

import (
	"testing"
	"time"
)

func TestSystemClock_Now(t *testing.T) {
	clk := NewSystemClock()

	t1 := clk.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := clk.Now()

	if t2 <= t1 {
		t.Error("Clock should advance monotonically")
	}

	elapsed := t2 - t1
	if elapsed < FromDuration(clk, 10*time.Millisecond) {
		t.Errorf("Expected at least 10ms elapsed, got %v", ToDuration(clk, elapsed))
	}
}

func TestSystemClock_TicksPerSecond(t *testing.T) {
	clk := NewSystemClock()
	if clk.TicksPerSecond() != 1_000_000_000 {
		t.Errorf("Expected nanosecond ticks, got %d per second", clk.TicksPerSecond())
	}
}

func TestSince(t *testing.T) {
	clk := NewSystemClock()

	start := clk.Now()
	time.Sleep(20 * time.Millisecond)
	elapsed := Since(clk, start)

	if elapsed < 20*time.Millisecond {
		t.Errorf("Expected at least 20ms, got %v", elapsed)
	}

	if elapsed > 500*time.Millisecond {
		t.Errorf("Expected less than 500ms, got %v", elapsed)
	}
}

func TestSystemClock_MonotonicBehavior(t *testing.T) {
	clk := NewSystemClock()

	// Capture many timestamps rapidly
	const iterations = 1000
	timestamps := make([]Tick, iterations)

	for i := 0; i < iterations; i++ {
		timestamps[i] = clk.Now()
	}

	for i := 1; i < len(timestamps); i++ {
		if timestamps[i] < timestamps[i-1] {
			t.Errorf("Non-monotonic at index %d: %d -> %d",
				i, timestamps[i-1], timestamps[i])
		}
	}

	t.Logf("Captured %d monotonic timestamps successfully", iterations)
}

func TestPlatformClock(t *testing.T) {
	clk, err := NewPlatformClock()
	if err != nil {
		t.Fatalf("NewPlatformClock: %v", err)
	}

	if clk.TicksPerSecond() <= 0 {
		t.Fatalf("Expected positive resolution, got %d", clk.TicksPerSecond())
	}

	t1 := clk.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := clk.Now()

	if t2 <= t1 {
		t.Errorf("Platform clock did not advance: %d -> %d", t1, t2)
	}
	if d := ToDuration(clk, t2-t1); d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms, got %v", d)
	}

	t.Logf("Platform clock %q: %d ticks/s", clk.Name(), clk.TicksPerSecond())
}

func TestSystemClock_MultipleInstances(t *testing.T) {
	clk1 := NewSystemClock()
	time.Sleep(5 * time.Millisecond)
	clk2 := NewSystemClock()

	// Each clock has its own epoch, so readings aren't directly comparable
	t1 := clk1.Now()
	t2 := clk2.Now()

	t.Logf("Clock1 reading: %d, Clock2 reading: %d", t1, t2)

	time.Sleep(10 * time.Millisecond)

	if Since(clk1, t1) < 10*time.Millisecond {
		t.Error("Clock1 didn't advance properly")
	}

	if Since(clk2, t2) < 10*time.Millisecond {
		t.Error("Clock2 didn't advance properly")
	}
}
