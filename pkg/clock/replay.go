package clock

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/go-json-experiment/json"
)

// ErrEmptyReplay is returned when a recording holds no intervals.
var ErrEmptyReplay = errors.New("clock: replay has no intervals")

// Replay is a Source that plays back recorded frame intervals. The reading
// only moves when Step is called, by the next recorded interval.
type Replay struct {
	mu sync.Mutex

	tps       int64
	intervals []Tick
	pos       int
	now       Tick
	loop      bool
	passes    int
}

// NewReplay converts intervals to ticks of the given resolution.
// A non-positive ticksPerSecond selects nanosecond ticks. Negative intervals
// would make the source run backwards and are rejected.
func NewReplay(ticksPerSecond int64, intervals []time.Duration) (*Replay, error) {
	if ticksPerSecond <= 0 {
		ticksPerSecond = int64(time.Second)
	}
	if len(intervals) == 0 {
		return nil, ErrEmptyReplay
	}

	r := &Replay{tps: ticksPerSecond, intervals: make([]Tick, len(intervals))}
	for i, d := range intervals {
		if d < 0 {
			return nil, fmt.Errorf("clock: replay interval %d is negative (%s)", i, d)
		}
		r.intervals[i] = FromDuration(r, d)
	}
	return r, nil
}

// LoadReplay reads a recording written as a JSON array of frame intervals in
// milliseconds, for example [16.7, 16.6, 33.4].
func LoadReplay(rd io.Reader, ticksPerSecond int64) (*Replay, error) {
	var millis []float64
	if err := json.UnmarshalRead(rd, &millis); err != nil {
		return nil, fmt.Errorf("clock: decode replay: %w", err)
	}

	intervals := make([]time.Duration, len(millis))
	for i, ms := range millis {
		intervals[i] = time.Duration(math.Round(ms * float64(time.Millisecond)))
	}
	return NewReplay(ticksPerSecond, intervals)
}

// SetLoop makes Step start over from the first interval once the recording
// is exhausted. The reading keeps increasing across passes.
func (r *Replay) SetLoop(loop bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loop = loop
}

// Step advances the reading by the next interval. It reports false, leaving
// the reading unchanged, when the recording is exhausted and not looping.
func (r *Replay) Step() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pos == len(r.intervals) {
		if !r.loop {
			return false
		}
		r.pos = 0
		r.passes++
	}
	r.now += r.intervals[r.pos]
	r.pos++
	return true
}

// Rewind returns to the first interval and a zero reading.
func (r *Replay) Rewind() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pos = 0
	r.now = 0
	r.passes = 0
}

// Now returns the current reading.
func (r *Replay) Now() Tick {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.now
}

// TicksPerSecond returns the resolution given to NewReplay.
func (r *Replay) TicksPerSecond() int64 {
	return r.tps
}

// Done reports whether Step would return false.
func (r *Replay) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.loop && r.pos == len(r.intervals)
}

// Position returns how many intervals of the current pass have been played.
func (r *Replay) Position() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos
}

// Len returns the number of recorded intervals.
func (r *Replay) Len() int {
	return len(r.intervals)
}

// Passes returns how many times a looping replay has wrapped around.
func (r *Replay) Passes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.passes
}
