package datetime

import (
	"github.com/BYTE-6D65/ticktime/pkg/errs"
	"github.com/BYTE-6D65/ticktime/pkg/timespan"
)

const (
	daysPerYear     = 365
	daysPer4Years   = daysPerYear*4 + 1        // 1461
	daysPer100Years = daysPer4Years*25 - 1     // 36524
	daysPer400Years = daysPer100Years*4 + 1    // 146097
	daysTo10000     = daysPer400Years*25 - 366 // 3652059

	// MinYear and MaxYear bound every year accepted or produced.
	MinYear = 1
	MaxYear = 9999
)

// MaxTicks is the tick value of 9999-12-31 23:59:59.9999999.
const MaxTicks uint64 = daysTo10000*uint64(timespan.TicksPerDay) - 1

// Largest millisecond offset accepted by the AddDays family (exclusive).
const maxAddMillis int64 = daysTo10000 * timespan.MillisPerDay

// Cumulative days before each month; index 12 holds the year length.
var (
	daysToMonth365 = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}
	daysToMonth366 = [13]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}
)

// IsLeapYear reports whether year has 366 days under the Gregorian rule.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 == 0 {
		return year%400 == 0
	}
	return true
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return daysPerYear + 1
	}
	return daysPerYear
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, errs.OutOfRange("datetime.DaysInMonth", "month", int64(month), 1, 12)
	}
	return daysInMonth(year, month), nil
}

func daysInMonth(year, month int) int {
	table := monthTable(year)
	return table[month] - table[month-1]
}

func monthTable(year int) *[13]int {
	if IsLeapYear(year) {
		return &daysToMonth366
	}
	return &daysToMonth365
}

// DateToTicks returns the tick value of midnight on the given date.
func DateToTicks(year, month, day int) (int64, error) {
	const op = "datetime.DateToTicks"

	if year < MinYear || year > MaxYear {
		return 0, errs.OutOfRange(op, "year", int64(year), MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return 0, errs.OutOfRange(op, "month", int64(month), 1, 12)
	}
	table := monthTable(year)
	if dim := table[month] - table[month-1]; day < 1 || day > dim {
		return 0, errs.OutOfRange(op, "day", int64(day), 1, int64(dim))
	}

	y := year - 1
	days := y*daysPerYear + y/4 - y/100 + y/400 + table[month-1] + day - 1
	return int64(days) * timespan.TicksPerDay, nil
}

// timeToTicks is the time-of-day contribution; unlike timespan.TimeToTicks it
// only accepts a valid wall-clock reading.
func timeToTicks(hour, minute, second int) (int64, error) {
	const op = "datetime.TimeToTicks"

	if hour < 0 || hour > 23 {
		return 0, errs.OutOfRange(op, "hour", int64(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return 0, errs.OutOfRange(op, "minute", int64(minute), 0, 59)
	}
	if second < 0 || second > 59 {
		return 0, errs.OutOfRange(op, "second", int64(second), 0, 59)
	}
	return timespan.TimeToTicks(0, hour, minute, second, 0)
}

// civil decomposes a tick count into year, month, day and day of year.
//
// The day count is split into 400-, 100-, 4- and 1-year blocks. The last
// 100-year block of a 400-year cycle and the last year of a 4-year block are
// one day longer, so a quotient of 4 in those divisions means "the final day
// of the previous block" and is clamped to 3.
func civil(ticks int64) (year, month, day, yday int) {
	n := int(ticks / timespan.TicksPerDay)

	y400 := n / daysPer400Years
	n -= y400 * daysPer400Years

	y100 := n / daysPer100Years
	if y100 == 4 {
		y100 = 3
	}
	n -= y100 * daysPer100Years

	y4 := n / daysPer4Years
	n -= y4 * daysPer4Years

	y1 := n / daysPerYear
	if y1 == 4 {
		y1 = 3
	}
	n -= y1 * daysPerYear

	year = y400*400 + y100*100 + y4*4 + y1 + 1
	yday = n + 1

	// Leap iff last year of its 4-year block, except the 25th block of a
	// century unless that century is the 4th of its 400-year cycle.
	table := &daysToMonth365
	if y1 == 3 && (y4 != 24 || y100 == 3) {
		table = &daysToMonth366
	}

	m := n >> 6
	for n >= table[m] {
		m++
	}
	month = m
	day = n - table[m-1] + 1
	return year, month, day, yday
}
