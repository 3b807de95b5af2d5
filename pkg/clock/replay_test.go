package clock

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReplay_Step(t *testing.T) {
	// Frame pacing trace at 100ns resolution
	r, err := NewReplay(10_000_000, []time.Duration{
		16 * time.Millisecond,
		17 * time.Millisecond,
		33 * time.Millisecond, // dropped frame
		16 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewReplay failed: %v", err)
	}

	if r.Now() != 0 {
		t.Errorf("Expected replay to start at 0, got %d", r.Now())
	}
	if r.Len() != 4 {
		t.Errorf("Expected 4 intervals, got %d", r.Len())
	}

	expected := []Tick{160_000, 330_000, 660_000, 820_000}
	for i, want := range expected {
		if !r.Step() {
			t.Fatalf("Step %d reported exhaustion early", i+1)
		}
		if got := r.Now(); got != want {
			t.Errorf("After step %d: expected %d, got %d", i+1, want, got)
		}
	}

	if !r.Done() {
		t.Error("Replay should be done after the last interval")
	}
	if r.Step() {
		t.Error("Step past the end should report false")
	}
	if r.Now() != 820_000 {
		t.Errorf("Reading must not move after the end, got %d", r.Now())
	}
}

func TestReplay_Loop(t *testing.T) {
	r, err := NewReplay(1000, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewReplay failed: %v", err)
	}
	r.SetLoop(true)

	for i := 0; i < 5; i++ {
		if !r.Step() {
			t.Fatalf("Looping replay stopped at step %d", i+1)
		}
	}

	// 10+20+10+20+10
	if r.Now() != 70 {
		t.Errorf("Expected 70 ticks after five steps, got %d", r.Now())
	}
	if r.Passes() != 2 {
		t.Errorf("Expected 2 passes, got %d", r.Passes())
	}
	if r.Position() != 1 {
		t.Errorf("Expected position 1 in the third pass, got %d", r.Position())
	}
	if r.Done() {
		t.Error("Looping replay is never done")
	}
}

func TestReplay_Rewind(t *testing.T) {
	r, err := NewReplay(1000, []time.Duration{time.Second})
	if err != nil {
		t.Fatalf("NewReplay failed: %v", err)
	}

	r.Step()
	r.Rewind()

	if r.Now() != 0 || r.Position() != 0 || r.Done() {
		t.Errorf("Rewind should restore the initial state, got now=%d pos=%d", r.Now(), r.Position())
	}
	if !r.Step() || r.Now() != 1000 {
		t.Errorf("Expected replay to play again after rewind, got %d", r.Now())
	}
}

func TestReplay_Invalid(t *testing.T) {
	if _, err := NewReplay(1000, nil); !errors.Is(err, ErrEmptyReplay) {
		t.Errorf("Expected ErrEmptyReplay, got %v", err)
	}

	if _, err := NewReplay(1000, []time.Duration{time.Millisecond, -time.Millisecond}); err == nil {
		t.Error("Expected negative interval to be rejected")
	}
}

func TestReplay_DefaultResolution(t *testing.T) {
	r, err := NewReplay(0, []time.Duration{time.Millisecond})
	if err != nil {
		t.Fatalf("NewReplay failed: %v", err)
	}
	if r.TicksPerSecond() != int64(time.Second) {
		t.Errorf("Expected nanosecond ticks, got %d per second", r.TicksPerSecond())
	}
}

func TestLoadReplay(t *testing.T) {
	r, err := LoadReplay(strings.NewReader("[16.5, 17, 0.25]"), 1_000_000)
	if err != nil {
		t.Fatalf("LoadReplay failed: %v", err)
	}

	expected := []Tick{16_500, 33_500, 33_750}
	for i, want := range expected {
		r.Step()
		if got := r.Now(); got != want {
			t.Errorf("After step %d: expected %d, got %d", i+1, want, got)
		}
	}
}

func TestLoadReplay_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "16.5 17"},
		{"wrong type", `{"intervals": [16.5]}`},
		{"empty", "[]"},
		{"negative", "[16.5, -1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadReplay(strings.NewReader(tt.input), 1000); err == nil {
				t.Errorf("Expected error for %q", tt.input)
			}
		})
	}
}

func TestLoadReplay_RoundsToNanoseconds(t *testing.T) {
	// 16.7 has no exact binary form; truncation would lose a tick
	r, err := LoadReplay(strings.NewReader("[16.7]"), 10_000_000)
	if err != nil {
		t.Fatalf("LoadReplay failed: %v", err)
	}
	r.Step()
	if r.Now() != 167_000 {
		t.Errorf("Expected 167000 ticks, got %d", r.Now())
	}
}
