package stopwatch

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/uuid"

	"github.com/BYTE-6D65/ticktime/pkg/clock"
	"github.com/BYTE-6D65/ticktime/pkg/datetime"
	"github.com/BYTE-6D65/ticktime/pkg/telemetry"
)

// Lap is one recorded split.
type Lap struct {
	ID     uuid.UUID         `json:"id"`
	Seq    int               `json:"seq"`    // 1-based, keeps counting after the ring wraps
	Ticks  clock.Tick        `json:"ticks"`  // in the stopwatch source's unit
	Millis float64           `json:"millis"`
	At     datetime.DateTime `json:"at"`     // local wall time of the split
}

// LapRecorder keeps the last N laps in a ring buffer.
type LapRecorder struct {
	laps  []Lap
	index int
	count int
	size  int
	seq   int
	mu    sync.Mutex

	wall    datetime.Source
	name    string
	metrics *telemetry.Metrics
}

// RecorderOption configures a LapRecorder.
type RecorderOption func(*LapRecorder)

// WithRecorderMetrics counts recorded laps under name.
func WithRecorderMetrics(name string, m *telemetry.Metrics) RecorderOption {
	return func(r *LapRecorder) {
		r.name = name
		r.metrics = m
	}
}

// NewLapRecorder creates a recorder holding up to size laps, stamped with
// the local time of wall.
func NewLapRecorder(size int, wall datetime.Source, opts ...RecorderOption) *LapRecorder {
	if size <= 0 {
		size = 100 // Default
	}

	r := &LapRecorder{
		laps: make([]Lap, size),
		size: size,
		wall: wall,
		name: "default",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Split trips sw and records the result. A stopped stopwatch records a
// zero-length lap.
func (r *LapRecorder) Split(sw *Stopwatch) Lap {
	return r.Record(sw.Trip(), sw.Source())
}

// Record adds a lap of ticks measured on src.
func (r *LapRecorder) Record(ticks clock.Tick, src clock.Source) Lap {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	// An out-of-range wall clock leaves At at MinValue.
	at, _ := datetime.Now(r.wall)

	r.mu.Lock()
	r.seq++
	lap := Lap{
		ID:     id,
		Seq:    r.seq,
		Ticks:  ticks,
		Millis: clock.ToMillis(src, ticks),
		At:     at,
	}
	r.laps[r.index] = lap
	r.index = (r.index + 1) % r.size
	if r.count < r.size {
		r.count++
	}
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.LapsRecorded.WithLabelValues(r.name).Inc()
	}
	return lap
}

// Laps returns the retained laps, oldest first.
func (r *LapRecorder) Laps() []Lap {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Lap, 0, r.count)
	start := (r.index - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		out = append(out, r.laps[(start+i)%r.size])
	}
	return out
}

// Len returns the number of retained laps.
func (r *LapRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Best returns the shortest retained lap.
func (r *LapRecorder) Best() (Lap, bool) {
	laps := r.Laps()
	if len(laps) == 0 {
		return Lap{}, false
	}
	best := laps[0]
	for _, l := range laps[1:] {
		if l.Ticks < best.Ticks {
			best = l
		}
	}
	return best, true
}

// Reset drops all laps and restarts numbering.
func (r *LapRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.laps)
	r.index = 0
	r.count = 0
	r.seq = 0
}

// Dump is the JSON document written by LapRecorder.Dump.
type Dump struct {
	Recorder  string            `json:"recorder"`
	Generated datetime.DateTime `json:"generated"`
	Laps      []Lap             `json:"laps"`
}

// Dump writes the retained laps to w as indented JSON, oldest first.
func (r *LapRecorder) Dump(w io.Writer) error {
	generated, _ := datetime.Now(r.wall)
	d := Dump{
		Recorder:  r.name,
		Generated: generated,
		Laps:      r.Laps(),
	}
	if err := json.MarshalWrite(w, d, jsontext.WithIndent("  ")); err != nil {
		return fmt.Errorf("dump laps: %w", err)
	}
	return nil
}
