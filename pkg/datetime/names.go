package datetime

import "strconv"

const (
	// DaysPerWeek is the number of weekdays; short weekday notation adds it.
	DaysPerWeek = 7
	// MonthsPerYear is the number of months; short month notation adds it.
	MonthsPerYear = 12
)

// Weekday is a day of the week, Sunday being 0. Values in [7, 13] are the
// short notation of the same day.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Short returns the short notation of w. Already short values are returned
// unchanged.
func (w Weekday) Short() Weekday {
	if w.IsShort() {
		return w
	}
	return w + DaysPerWeek
}

// IsShort reports whether w is in short notation.
func (w Weekday) IsShort() bool {
	return w >= DaysPerWeek
}

// Long maps a short weekday back to its plain value.
func (w Weekday) Long() Weekday {
	if w.IsShort() {
		return w - DaysPerWeek
	}
	return w
}

// String returns the English day name, abbreviated to three letters for the
// short notation.
func (w Weekday) String() string {
	l := w.Long()
	if l < Sunday || l > Saturday || w >= 2*DaysPerWeek {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	if w.IsShort() {
		return weekdayNames[l][:3]
	}
	return weekdayNames[l]
}

// Month is a month of the year, January being 1. Values in [13, 24] are the
// short notation of the same month.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Short returns the short notation of m. Already short values are returned
// unchanged.
func (m Month) Short() Month {
	if m.IsShort() {
		return m
	}
	return m + MonthsPerYear
}

// IsShort reports whether m is in short notation.
func (m Month) IsShort() bool {
	return m > MonthsPerYear
}

// Long maps a short month back to its plain value.
func (m Month) Long() Month {
	if m.IsShort() {
		return m - MonthsPerYear
	}
	return m
}

// String returns the English month name, abbreviated to three letters for
// the short notation.
func (m Month) String() string {
	l := m.Long()
	if l < January || l > December || m > 2*MonthsPerYear {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	if m.IsShort() {
		return monthNames[l-1][:3]
	}
	return monthNames[l-1]
}
