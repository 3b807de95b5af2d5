// Package timespan provides Span, a signed interval measured in 100-nanosecond
// ticks.
//
// A Span is a plain value: arithmetic returns a new Span and never modifies
// the receiver. Operations that can leave the representable range return an
// *errs.RangeError instead of wrapping.
package timespan

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/BYTE-6D65/ticktime/pkg/errs"
)

// Tick-per-unit constants. A tick is 100 nanoseconds.
const (
	TicksPerMicrosecond int64 = 10
	TicksPerMillisecond int64 = 10000
	TicksPerSecond      int64 = TicksPerMillisecond * 1000
	TicksPerMinute      int64 = TicksPerSecond * 60
	TicksPerHour        int64 = TicksPerMinute * 60
	TicksPerDay         int64 = TicksPerHour * 24
)

// Millisecond-per-unit constants.
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute int64 = MillisPerSecond * 60
	MillisPerHour   int64 = MillisPerMinute * 60
	MillisPerDay    int64 = MillisPerHour * 24
)

// The signed 64-bit tick range expressed in whole milliseconds.
const (
	MaxMilliseconds int64 = math.MaxInt64 / TicksPerMillisecond
	MinMilliseconds int64 = -MaxMilliseconds
)

// Span is a signed number of 100ns ticks.
type Span int64

// Sentinel values.
const (
	Zero     Span = 0
	MaxValue Span = math.MaxInt64
	MinValue Span = math.MinInt64
)

// FromTicks wraps a raw tick count. No validation is performed.
func FromTicks(ticks int64) Span {
	return Span(ticks)
}

// New returns the span of days, hours, minutes, seconds and milliseconds.
// Components may be negative or exceed their natural period; only the total
// is range checked.
func New(days, hours, minutes, seconds, milliseconds int) (Span, error) {
	ticks, err := TimeToTicks(days, hours, minutes, seconds, milliseconds)
	if err != nil {
		return Zero, err
	}
	return Span(ticks), nil
}

// NewDHMS returns the span of days, hours, minutes and seconds.
func NewDHMS(days, hours, minutes, seconds int) (Span, error) {
	return New(days, hours, minutes, seconds, 0)
}

// NewHMS returns the span of hours, minutes and seconds.
func NewHMS(hours, minutes, seconds int) (Span, error) {
	return New(0, hours, minutes, seconds, 0)
}

// Must panics if err is non-nil. Intended for constant-like declarations.
func Must(s Span, err error) Span {
	if err != nil {
		panic(err)
	}
	return s
}

// TimeToTicks converts the components to ticks through whole milliseconds.
// The millisecond total must lie within [MinMilliseconds, MaxMilliseconds].
func TimeToTicks(days, hours, minutes, seconds, milliseconds int) (int64, error) {
	const op = "timespan.TimeToTicks"

	// Bound every component first so the sum below cannot wrap.
	parts := []struct {
		name  string
		value int64
		scale int64
	}{
		{"days", int64(days), MillisPerDay},
		{"hours", int64(hours), MillisPerHour},
		{"minutes", int64(minutes), MillisPerMinute},
		{"seconds", int64(seconds), MillisPerSecond},
		{"milliseconds", int64(milliseconds), 1},
	}
	for _, p := range parts {
		limit := MaxMilliseconds / p.scale
		if p.value > limit || p.value < -limit {
			return 0, errs.OutOfRange(op, p.name, p.value, -limit, limit)
		}
	}

	ms := ((((int64(days)*24+int64(hours))*3600)+int64(minutes)*60)+int64(seconds))*MillisPerSecond + int64(milliseconds)
	if ms > MaxMilliseconds || ms < MinMilliseconds {
		return 0, errs.OutOfRange(op, "milliseconds", ms, MinMilliseconds, MaxMilliseconds)
	}
	return ms * TicksPerMillisecond, nil
}

func interval(op string, value, scale int64) (Span, error) {
	limit := MaxMilliseconds / scale
	if value > limit || value < -limit {
		return Zero, errs.OutOfRange(op, "value", value, -limit, limit)
	}
	return Span(value * scale * TicksPerMillisecond), nil
}

// FromDays returns a span of whole days.
func FromDays(value int64) (Span, error) { return interval("timespan.FromDays", value, MillisPerDay) }

// FromHours returns a span of whole hours.
func FromHours(value int64) (Span, error) {
	return interval("timespan.FromHours", value, MillisPerHour)
}

// FromMinutes returns a span of whole minutes.
func FromMinutes(value int64) (Span, error) {
	return interval("timespan.FromMinutes", value, MillisPerMinute)
}

// FromSeconds returns a span of whole seconds.
func FromSeconds(value int64) (Span, error) {
	return interval("timespan.FromSeconds", value, MillisPerSecond)
}

// FromMilliseconds returns a span of whole milliseconds.
func FromMilliseconds(value int64) (Span, error) {
	return interval("timespan.FromMilliseconds", value, 1)
}

// FromStd converts a time.Duration, truncating below one tick.
func FromStd(d time.Duration) Span {
	return Span(int64(d) / 100)
}

// Std converts the span to a time.Duration, saturating at the duration range.
func (s Span) Std() time.Duration {
	const limit = math.MaxInt64 / 100
	switch {
	case s > limit:
		return time.Duration(math.MaxInt64)
	case s < -limit:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(int64(s) * 100)
}

// Ticks returns the raw tick count.
func (s Span) Ticks() int64 { return int64(s) }

// Days returns the whole-day component.
func (s Span) Days() int { return int(int64(s) / TicksPerDay) }

// Hours returns the hour component in [-23, 23].
func (s Span) Hours() int { return int((int64(s) / TicksPerHour) % 24) }

// Minutes returns the minute component in [-59, 59].
func (s Span) Minutes() int { return int((int64(s) / TicksPerMinute) % 60) }

// Seconds returns the second component in [-59, 59].
func (s Span) Seconds() int { return int((int64(s) / TicksPerSecond) % 60) }

// Milliseconds returns the millisecond component in [-999, 999].
func (s Span) Milliseconds() int {
	return int((int64(s) / TicksPerMillisecond) % MillisPerSecond)
}

// TotalDays returns the span in whole days.
func (s Span) TotalDays() int64 { return int64(s) / TicksPerDay }

// TotalHours returns the span in whole hours.
func (s Span) TotalHours() int64 { return int64(s) / TicksPerHour }

// TotalMinutes returns the span in whole minutes.
func (s Span) TotalMinutes() int64 { return int64(s) / TicksPerMinute }

// TotalSeconds returns the span in whole seconds.
func (s Span) TotalSeconds() int64 { return int64(s) / TicksPerSecond }

// TotalMilliseconds returns the span in whole milliseconds, clamped to
// [MinMilliseconds, MaxMilliseconds].
func (s Span) TotalMilliseconds() int64 {
	ms := int64(s) / TicksPerMillisecond
	if ms > MaxMilliseconds {
		return MaxMilliseconds
	}
	if ms < MinMilliseconds {
		return MinMilliseconds
	}
	return ms
}

// Add returns s + o.
func (s Span) Add(o Span) (Span, error) {
	r := s + o
	if (o > 0 && r < s) || (o < 0 && r > s) {
		return s, errs.Overflow("timespan.Add", "ticks", int64(o))
	}
	return r, nil
}

// Sub returns s - o.
func (s Span) Sub(o Span) (Span, error) {
	r := s - o
	if (o > 0 && r > s) || (o < 0 && r < s) {
		return s, errs.Overflow("timespan.Sub", "ticks", int64(o))
	}
	return r, nil
}

// Negate returns -s. MinValue has no positive counterpart.
func (s Span) Negate() (Span, error) {
	if s == MinValue {
		return s, errs.Overflow("timespan.Negate", "ticks", int64(s))
	}
	return -s, nil
}

// Abs returns the magnitude of s.
func (s Span) Abs() (Span, error) {
	if s >= 0 {
		return s, nil
	}
	return s.Negate()
}

// Compare returns -1, 0 or 1 depending on whether a is shorter than, equal
// to or longer than b.
func Compare(a, b Span) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// CompareTo compares s with o, see Compare.
func (s Span) CompareTo(o Span) int { return Compare(s, o) }

// Equals reports whether both spans hold the same tick count.
func (s Span) Equals(o Span) bool { return s == o }

// String formats the span as [-][d.]hh:mm:ss[.fffffff].
func (s Span) String() string {
	var b strings.Builder

	t := int64(s)
	var u uint64
	if t < 0 {
		b.WriteByte('-')
		u = uint64(-(t + 1)) + 1
	} else {
		u = uint64(t)
	}

	days := u / uint64(TicksPerDay)
	rem := u % uint64(TicksPerDay)
	if days > 0 {
		fmt.Fprintf(&b, "%d.", days)
	}

	hours := rem / uint64(TicksPerHour)
	rem %= uint64(TicksPerHour)
	minutes := rem / uint64(TicksPerMinute)
	rem %= uint64(TicksPerMinute)
	seconds := rem / uint64(TicksPerSecond)
	frac := rem % uint64(TicksPerSecond)

	fmt.Fprintf(&b, "%02d:%02d:%02d", hours, minutes, seconds)
	if frac > 0 {
		fmt.Fprintf(&b, ".%07d", frac)
	}
	return b.String()
}
