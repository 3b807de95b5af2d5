// Package wallclock provides datetime.Source implementations: the host wall
// clock and a settable fixture.
package wallclock

import (
	"sync"
	"time"

	"github.com/BYTE-6D65/ticktime/pkg/datetime"
	"github.com/BYTE-6D65/ticktime/pkg/timespan"
)

// System reads the host wall clock and time zone on every call.
//
// File times are Windows FILETIME values, 100ns intervals since 1601-01-01
// UTC. On Windows they come from the OS; elsewhere they are derived from
// time.Now.
type System struct{}

// NewSystem returns the host wall-clock source.
func NewSystem() *System {
	return &System{}
}

// UTCTicks returns the current UTC time in ticks since 0001-01-01.
func (s *System) UTCTicks() uint64 {
	return ticksOf(time.Now().UTC())
}

// LocalTicks returns the current local time in ticks since 0001-01-01.
func (s *System) LocalTicks() uint64 {
	return uint64(int64(s.UTCTicks()) + zoneOffset())
}

// ZoneOffset returns local minus UTC in ticks, daylight saving included.
func (s *System) ZoneOffset() int64 {
	return zoneOffset()
}

// FileTime returns the current system file time.
func (s *System) FileTime() uint64 {
	return systemFileTime()
}

// TicksFromFileTime converts a file time to local ticks using the current
// zone offset.
func (s *System) TicksFromFileTime(ft uint64) uint64 {
	return uint64(int64(ft) + datetime.FileTimeEpochTicks + zoneOffset())
}

// FileTimeFromTicks converts local ticks to a file time using the current
// zone offset.
func (s *System) FileTimeFromTicks(ticks uint64) uint64 {
	return uint64(int64(ticks) - datetime.FileTimeEpochTicks - zoneOffset())
}

func ticksOf(t time.Time) uint64 {
	// The host clock is always inside [0001, 9999].
	d, _ := datetime.FromTime(t)
	return d.Ticks()
}

// Fixed is a settable Source for tests and replays. Its file time is the
// local tick count itself, so file-time conversions are the identity.
type Fixed struct {
	mu     sync.Mutex
	local  uint64
	offset int64
}

// NewFixed returns a source frozen at local time with the given zone offset
// (local minus UTC).
func NewFixed(local datetime.DateTime, offset timespan.Span) *Fixed {
	return &Fixed{local: local.Ticks(), offset: offset.Ticks()}
}

// Set moves the local time to d.
func (f *Fixed) Set(d datetime.DateTime) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.local = d.Ticks()
}

// SetZoneOffset changes the zone offset.
func (f *Fixed) SetZoneOffset(offset timespan.Span) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.offset = offset.Ticks()
}

// Advance moves the local time by s.
func (f *Fixed) Advance(s timespan.Span) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next, err := datetime.DateTime(f.local).Add(s)
	if err != nil {
		return err
	}
	f.local = next.Ticks()
	return nil
}

// LocalTicks returns the frozen local time.
func (f *Fixed) LocalTicks() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.local
}

// UTCTicks returns the local time minus the zone offset.
func (f *Fixed) UTCTicks() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(int64(f.local) - f.offset)
}

// ZoneOffset returns local minus UTC in ticks.
func (f *Fixed) ZoneOffset() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.offset
}

// FileTime returns the local tick count.
func (f *Fixed) FileTime() uint64 {
	return f.LocalTicks()
}

// TicksFromFileTime returns ft unchanged.
func (f *Fixed) TicksFromFileTime(ft uint64) uint64 { return ft }

// FileTimeFromTicks returns ticks unchanged.
func (f *Fixed) FileTimeFromTicks(ticks uint64) uint64 { return ticks }
