// Package datetime implements DateTime, an absolute point in time counted in
// 100-nanosecond ticks since 0001-01-01 00:00:00 on the proleptic Gregorian
// calendar.
//
// A DateTime carries no time zone. Whether a value is UTC or local time is
// decided by the caller, typically by which Source query produced it.
// Calendar fields are always derived from the tick count, never cached.
//
// All arithmetic is pure and range checked: an operation that would leave
// [MinValue, MaxValue] returns an *errs.RangeError and the receiver unchanged.
package datetime

import (
	"github.com/BYTE-6D65/ticktime/pkg/errs"
	"github.com/BYTE-6D65/ticktime/pkg/timespan"
)

// DateTime is a tick count in the low 62 bits. The top two bits are reserved
// and ignored by every accessor.
type DateTime uint64

const tickMask uint64 = 0x3fffffffffffffff

// Sentinel values.
const (
	MinValue DateTime = 0
	MaxValue DateTime = DateTime(MaxTicks)
)

// FromTicks returns the DateTime for a raw tick count. A count with the
// reserved bits set is reported as an overflow carrying the raw bits.
func FromTicks(ticks uint64) (DateTime, error) {
	const op = "datetime.FromTicks"

	if ticks&^tickMask != 0 {
		return MinValue, errs.Overflow(op, "ticks", int64(ticks))
	}
	if ticks > MaxTicks {
		return MinValue, errs.OutOfRange(op, "ticks", int64(ticks), 0, int64(MaxTicks))
	}
	return DateTime(ticks), nil
}

// FromBinary restores a value produced by ToBinary. Reserved bits are dropped.
func FromBinary(binary uint64) (DateTime, error) {
	return FromTicks(binary & tickMask)
}

// New returns midnight on the given date.
func New(year, month, day int) (DateTime, error) {
	ticks, err := DateToTicks(year, month, day)
	if err != nil {
		return MinValue, err
	}
	return DateTime(ticks), nil
}

// NewWithTime returns the given date and wall-clock time.
func NewWithTime(year, month, day, hour, minute, second int) (DateTime, error) {
	return NewWithMillis(year, month, day, hour, minute, second, 0)
}

// NewWithMillis returns the given date and wall-clock time with a millisecond
// component in [0, 999].
func NewWithMillis(year, month, day, hour, minute, second, millisecond int) (DateTime, error) {
	date, err := DateToTicks(year, month, day)
	if err != nil {
		return MinValue, err
	}
	tod, err := timeToTicks(hour, minute, second)
	if err != nil {
		return MinValue, err
	}
	if millisecond < 0 || millisecond >= int(timespan.MillisPerSecond) {
		return MinValue, errs.OutOfRange("datetime.New", "millisecond", int64(millisecond), 0, timespan.MillisPerSecond-1)
	}
	return DateTime(date + tod + int64(millisecond)*timespan.TicksPerMillisecond), nil
}

// Must panics if err is non-nil. Intended for fixed dates in declarations.
func Must(d DateTime, err error) DateTime {
	if err != nil {
		panic(err)
	}
	return d
}

func (d DateTime) ticks() int64 {
	return int64(uint64(d) & tickMask)
}

// Ticks returns the number of ticks since 0001-01-01 00:00:00.
func (d DateTime) Ticks() uint64 {
	return uint64(d.ticks())
}

// ToBinary returns the raw 64-bit representation, reserved bits included.
func (d DateTime) ToBinary() uint64 {
	return uint64(d)
}

// Date returns d truncated to midnight.
func (d DateTime) Date() DateTime {
	t := d.ticks()
	return DateTime(t - t%timespan.TicksPerDay)
}

// TimeOfDay returns the time elapsed since midnight.
func (d DateTime) TimeOfDay() timespan.Span {
	return timespan.FromTicks(d.ticks() % timespan.TicksPerDay)
}

// DayOfWeek returns the weekday, Sunday being 0.
func (d DateTime) DayOfWeek() Weekday {
	return Weekday((d.ticks()/timespan.TicksPerDay + 1) % DaysPerWeek)
}

// DayOfWeekShort returns the weekday in short notation.
func (d DateTime) DayOfWeekShort() Weekday {
	return d.DayOfWeek().Short()
}

// DayOfYear returns the day of the year in [1, 366].
func (d DateTime) DayOfYear() int {
	_, _, _, yday := civil(d.ticks())
	return yday
}

// Year returns the year in [1, 9999].
func (d DateTime) Year() int {
	year, _, _, _ := civil(d.ticks())
	return year
}

// Month returns the month in [January, December].
func (d DateTime) Month() Month {
	_, month, _, _ := civil(d.ticks())
	return Month(month)
}

// MonthShort returns the month in short notation.
func (d DateTime) MonthShort() Month {
	return d.Month().Short()
}

// Day returns the day of the month in [1, 31].
func (d DateTime) Day() int {
	_, _, day, _ := civil(d.ticks())
	return day
}

// Civil returns year, month and day with a single decomposition.
func (d DateTime) Civil() (year int, month Month, day int) {
	y, m, dd, _ := civil(d.ticks())
	return y, Month(m), dd
}

// Hour returns the hour in [0, 23].
func (d DateTime) Hour() int {
	return int((d.ticks() / timespan.TicksPerHour) % 24)
}

// Minute returns the minute in [0, 59].
func (d DateTime) Minute() int {
	return int((d.ticks() / timespan.TicksPerMinute) % 60)
}

// Second returns the second in [0, 59].
func (d DateTime) Second() int {
	return int((d.ticks() / timespan.TicksPerSecond) % 60)
}

// Millisecond returns the millisecond in [0, 999].
func (d DateTime) Millisecond() int {
	return int((d.ticks() / timespan.TicksPerMillisecond) % timespan.MillisPerSecond)
}

// Add returns d shifted by s.
func (d DateTime) Add(s timespan.Span) (DateTime, error) {
	return d.AddTicks(s.Ticks())
}

// AddTicks returns d shifted by value ticks.
func (d DateTime) AddTicks(value int64) (DateTime, error) {
	t := d.ticks()
	hi := int64(MaxTicks) - t
	if value > hi || value < -t {
		return d, errs.OutOfRange("datetime.AddTicks", "ticks", value, -t, hi)
	}
	return DateTime(t + value), nil
}

func (d DateTime) addScaled(op string, value int, scale int64) (DateTime, error) {
	limit := maxAddMillis / scale
	if v := int64(value); v > limit || v < -limit {
		return d, errs.OutOfRange(op, "value", v, -limit, limit)
	}
	ms := int64(value) * scale
	if ms >= maxAddMillis || ms <= -maxAddMillis {
		return d, errs.OutOfRange(op, "milliseconds", ms, -maxAddMillis+1, maxAddMillis-1)
	}
	return d.AddTicks(ms * timespan.TicksPerMillisecond)
}

// AddDays returns d shifted by value days.
func (d DateTime) AddDays(value int) (DateTime, error) {
	return d.addScaled("datetime.AddDays", value, timespan.MillisPerDay)
}

// AddHours returns d shifted by value hours.
func (d DateTime) AddHours(value int) (DateTime, error) {
	return d.addScaled("datetime.AddHours", value, timespan.MillisPerHour)
}

// AddMinutes returns d shifted by value minutes.
func (d DateTime) AddMinutes(value int) (DateTime, error) {
	return d.addScaled("datetime.AddMinutes", value, timespan.MillisPerMinute)
}

// AddSeconds returns d shifted by value seconds.
func (d DateTime) AddSeconds(value int) (DateTime, error) {
	return d.addScaled("datetime.AddSeconds", value, timespan.MillisPerSecond)
}

// AddMilliseconds returns d shifted by value milliseconds.
func (d DateTime) AddMilliseconds(value int) (DateTime, error) {
	return d.addScaled("datetime.AddMilliseconds", value, 1)
}

// AddMonths returns d shifted by months calendar months. The time of day is
// kept and the day is clamped to the length of the target month, so
// January 31 plus one month is the last day of February.
func (d DateTime) AddMonths(months int) (DateTime, error) {
	const op = "datetime.AddMonths"

	if months < -120000 || months > 120000 {
		return d, errs.OutOfRange(op, "months", int64(months), -120000, 120000)
	}

	t := d.ticks()
	year, month, day, _ := civil(t)

	// Floor division so negative offsets borrow whole years.
	i := month - 1 + months
	if i >= 0 {
		month = i%12 + 1
		year += i / 12
	} else {
		month = 12 + (i+1)%12
		year += (i - 11) / 12
	}
	if year < MinYear || year > MaxYear {
		return d, errs.OutOfRange(op, "year", int64(year), MinYear, MaxYear)
	}

	if dim := daysInMonth(year, month); day > dim {
		day = dim
	}
	date, err := DateToTicks(year, month, day)
	if err != nil {
		return d, err
	}
	return DateTime(date + t%timespan.TicksPerDay), nil
}

// AddYears returns d shifted by years calendar years, with the same day
// clamping as AddMonths (February 29 becomes February 28).
func (d DateTime) AddYears(years int) (DateTime, error) {
	if years < -10000 || years > 10000 {
		return d, errs.OutOfRange("datetime.AddYears", "years", int64(years), -10000, 10000)
	}
	return d.AddMonths(years * 12)
}

// SubSpan returns d shifted back by s.
func (d DateTime) SubSpan(s timespan.Span) (DateTime, error) {
	t := d.ticks()
	v := s.Ticks()
	lo := t - int64(MaxTicks)
	if v > t || v < lo {
		return d, errs.OutOfRange("datetime.SubSpan", "ticks", v, lo, t)
	}
	return DateTime(t - v), nil
}

// Sub returns the span d - o. The result is negative when o is later.
func (d DateTime) Sub(o DateTime) timespan.Span {
	return timespan.FromTicks(d.ticks() - o.ticks())
}

// Compare returns -1, 0 or 1 depending on whether a is earlier than, equal
// to or later than b.
func Compare(a, b DateTime) int {
	ta, tb := a.ticks(), b.ticks()
	switch {
	case ta > tb:
		return 1
	case ta < tb:
		return -1
	}
	return 0
}

// CompareTo compares d with o, see Compare.
func (d DateTime) CompareTo(o DateTime) int { return Compare(d, o) }

// Equals reports whether d and o denote the same instant.
func (d DateTime) Equals(o DateTime) bool { return d.ticks() == o.ticks() }

// Before reports whether d is earlier than o.
func (d DateTime) Before(o DateTime) bool { return d.ticks() < o.ticks() }

// After reports whether d is later than o.
func (d DateTime) After(o DateTime) bool { return d.ticks() > o.ticks() }

// Swap exchanges the values of a and b.
func Swap(a, b *DateTime) {
	*a, *b = *b, *a
}
