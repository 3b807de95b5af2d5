package datetime

import (
	"time"

	"github.com/BYTE-6D65/ticktime/pkg/errs"
	"github.com/BYTE-6D65/ticktime/pkg/timespan"
)

const (
	// UnixEpochTicks is the tick value of 1970-01-01 00:00:00.
	UnixEpochTicks = 621355968000000000
	// FileTimeEpochTicks is the tick value of 1601-01-01 00:00:00, the origin
	// of a Windows FILETIME.
	FileTimeEpochTicks = 504911232000000000
)

// Source supplies the current wall-clock time in ticks.
//
// Implementations live in package wallclock. A file time is an opaque
// platform stamp; TicksFromFileTime and FileTimeFromTicks convert between it
// and local ticks.
type Source interface {
	UTCTicks() uint64
	LocalTicks() uint64
	// ZoneOffset returns local minus UTC, in ticks.
	ZoneOffset() int64
	FileTime() uint64
	TicksFromFileTime(ft uint64) uint64
	FileTimeFromTicks(ticks uint64) uint64
}

// Now returns the current local time of src.
func Now(src Source) (DateTime, error) {
	return FromTicks(src.LocalTicks())
}

// NowUTC returns the current UTC time of src.
func NowUTC(src Source) (DateTime, error) {
	return FromTicks(src.UTCTicks())
}

// Today returns local midnight of the current day of src.
func Today(src Source) (DateTime, error) {
	d, err := Now(src)
	if err != nil {
		return MinValue, err
	}
	return d.Date(), nil
}

// FromFileTime converts a file time of src to a local DateTime.
func FromFileTime(src Source, ft uint64) (DateTime, error) {
	return FromTicks(src.TicksFromFileTime(ft))
}

// ToFileTime converts d, taken as local time, to a file time of src.
func (d DateTime) ToFileTime(src Source) uint64 {
	return src.FileTimeFromTicks(d.Ticks())
}

// FromTime returns the wall-clock reading of t in its own location. The
// location itself is discarded; sub-tick precision is truncated.
func FromTime(t time.Time) (DateTime, error) {
	_, offset := t.Zone()
	sec := t.Unix() + int64(offset)

	const minSec = -UnixEpochTicks / timespan.TicksPerSecond
	const maxSec = (int64(MaxTicks) - UnixEpochTicks) / timespan.TicksPerSecond
	if sec < minSec || sec > maxSec {
		return MinValue, errs.OutOfRange("datetime.FromTime", "unix", sec, minSec, maxSec)
	}
	ticks := UnixEpochTicks + sec*timespan.TicksPerSecond + int64(t.Nanosecond())/100
	return DateTime(ticks), nil
}

// Time returns d as a time.Time in UTC with the same wall-clock fields.
func (d DateTime) Time() time.Time {
	rel := d.ticks() - UnixEpochTicks
	sec := rel / timespan.TicksPerSecond
	frac := rel % timespan.TicksPerSecond
	if frac < 0 {
		sec--
		frac += timespan.TicksPerSecond
	}
	return time.Unix(sec, frac*100).UTC()
}
