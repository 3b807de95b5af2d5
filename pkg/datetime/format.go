package datetime

import (
	"fmt"
	"strconv"

	"github.com/BYTE-6D65/ticktime/pkg/errs"
	"github.com/BYTE-6D65/ticktime/pkg/timespan"
)

// Layout is the fixed text form used by String and MarshalText.
const Layout = "YYYY-MM-DDThh:mm:ss.fffffff"

// String renders d as YYYY-MM-DDThh:mm:ss.fffffff.
func (d DateTime) String() string {
	year, month, day := d.Civil()
	frac := d.ticks() % timespan.TicksPerSecond
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%07d",
		year, int(month), day, d.Hour(), d.Minute(), d.Second(), frac)
}

// MarshalText implements encoding.TextMarshaler.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DateTime) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Parse reads a date-time in one of the forms
//
//	YYYY-MM-DD
//	YYYY-MM-DDThh:mm:ss
//	YYYY-MM-DDThh:mm:ss.f (1 to 7 fraction digits)
//
// A space is accepted in place of the T. Syntax errors wrap errs.ErrSyntax;
// field values outside their ranges return a *errs.RangeError.
func Parse(s string) (DateTime, error) {
	fail := func() (DateTime, error) {
		return MinValue, fmt.Errorf("datetime.Parse %q: %w", s, errs.ErrSyntax)
	}

	if len(s) < 10 || s[4] != '-' || s[7] != '-' {
		return fail()
	}
	year, ok1 := digits(s[0:4])
	month, ok2 := digits(s[5:7])
	day, ok3 := digits(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return fail()
	}
	if len(s) == 10 {
		return New(year, month, day)
	}

	if len(s) < 19 || (s[10] != 'T' && s[10] != ' ') || s[13] != ':' || s[16] != ':' {
		return fail()
	}
	hour, ok1 := digits(s[11:13])
	minute, ok2 := digits(s[14:16])
	second, ok3 := digits(s[17:19])
	if !ok1 || !ok2 || !ok3 {
		return fail()
	}

	var frac int64
	if rest := s[19:]; rest != "" {
		if rest[0] != '.' || len(rest) < 2 || len(rest) > 8 {
			return fail()
		}
		f, ok := digits(rest[1:])
		if !ok {
			return fail()
		}
		frac = int64(f)
		for i := len(rest) - 1; i < 7; i++ {
			frac *= 10
		}
	}

	dt, err := NewWithTime(year, month, day, hour, minute, second)
	if err != nil {
		return MinValue, err
	}
	return DateTime(dt.ticks() + frac), nil
}

func digits(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}
