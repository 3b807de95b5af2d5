package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/BYTE-6D65/ticktime/pkg/datetime"
	"github.com/BYTE-6D65/ticktime/pkg/errs"
	"github.com/BYTE-6D65/ticktime/pkg/logging"
	"github.com/BYTE-6D65/ticktime/pkg/timespan"
)

// nowReport is the --json form of the now command.
type nowReport struct {
	Time       datetime.DateTime `json:"time"`
	UTC        bool              `json:"utc"`
	Year       int               `json:"year"`
	Month      string            `json:"month"`
	Day        int               `json:"day"`
	Weekday    string            `json:"weekday"`
	DayOfYear  int               `json:"day_of_year"`
	LeapYear   bool              `json:"leap_year"`
	ZoneOffset string            `json:"zone_offset"`
	Ticks      uint64            `json:"ticks"`
}

func bindNow(fs *pflag.FlagSet) func(*app, *pflag.FlagSet) error {
	asJSON := fs.Bool("json", false, "print JSON")

	return func(a *app, fs *pflag.FlagSet) error {
		query, op := datetime.Now, "now"
		if a.cfg.UTC {
			query, op = datetime.NowUTC, "now_utc"
		}
		now, err := query(a.wall)
		if err != nil {
			return a.calendarError(op, err)
		}

		report := nowReport{
			Time:       now,
			UTC:        a.cfg.UTC,
			Year:       now.Year(),
			Month:      now.Month().String(),
			Day:        now.Day(),
			Weekday:    now.DayOfWeek().String(),
			DayOfYear:  now.DayOfYear(),
			LeapYear:   datetime.IsLeapYear(now.Year()),
			ZoneOffset: timespan.FromTicks(a.wall.ZoneOffset()).String(),
			Ticks:      now.Ticks(),
		}

		if *asJSON {
			if err := json.MarshalWrite(a.out, report, jsontext.WithIndent("  ")); err != nil {
				return err
			}
			fmt.Fprintln(a.out)
			return nil
		}

		zone := "local"
		if report.UTC {
			zone = "UTC"
		}
		fmt.Fprintf(a.out, "%s (%s)\n", report.Time, zone)
		fmt.Fprintf(a.out, "  %s, %d %s %d\n", report.Weekday, report.Day, report.Month, report.Year)
		fmt.Fprintf(a.out, "  Day of year: %d\n", report.DayOfYear)
		fmt.Fprintf(a.out, "  Zone offset: %s\n", report.ZoneOffset)
		fmt.Fprintf(a.out, "  Ticks:       %d\n", report.Ticks)
		return nil
	}
}

func bindAdd(fs *pflag.FlagSet) func(*app, *pflag.FlagSet) error {
	years := fs.Int("years", 0, "calendar years to add")
	months := fs.Int("months", 0, "calendar months to add")
	days := fs.Int("days", 0, "days to add")
	hours := fs.Int("hours", 0, "hours to add")
	minutes := fs.Int("minutes", 0, "minutes to add")
	seconds := fs.Int("seconds", 0, "seconds to add")
	millis := fs.Int("millis", 0, "milliseconds to add")

	return func(a *app, fs *pflag.FlagSet) error {
		if fs.NArg() != 1 {
			return errors.New("add needs exactly one date")
		}
		dt, err := datetime.Parse(fs.Arg(0))
		if err != nil {
			return a.calendarError("parse", err)
		}

		steps := []struct {
			op    string
			value int
			apply func(datetime.DateTime, int) (datetime.DateTime, error)
		}{
			{"add_years", *years, datetime.DateTime.AddYears},
			{"add_months", *months, datetime.DateTime.AddMonths},
			{"add_days", *days, datetime.DateTime.AddDays},
			{"add_hours", *hours, datetime.DateTime.AddHours},
			{"add_minutes", *minutes, datetime.DateTime.AddMinutes},
			{"add_seconds", *seconds, datetime.DateTime.AddSeconds},
			{"add_millis", *millis, datetime.DateTime.AddMilliseconds},
		}
		for _, step := range steps {
			if step.value == 0 {
				continue
			}
			if dt, err = step.apply(dt, step.value); err != nil {
				return a.calendarError(step.op, err)
			}
		}

		fmt.Fprintln(a.out, dt)
		return nil
	}
}

func bindDiff(fs *pflag.FlagSet) func(*app, *pflag.FlagSet) error {
	return func(a *app, fs *pflag.FlagSet) error {
		if fs.NArg() != 2 {
			return errors.New("diff needs exactly two dates")
		}
		from, err := datetime.Parse(fs.Arg(0))
		if err != nil {
			return a.calendarError("parse", err)
		}
		to, err := datetime.Parse(fs.Arg(1))
		if err != nil {
			return a.calendarError("parse", err)
		}

		span := from.Sub(to)
		fmt.Fprintln(a.out, span)
		fmt.Fprintf(a.out, "  Total days:    %d\n", span.TotalDays())
		fmt.Fprintf(a.out, "  Total hours:   %d\n", span.TotalHours())
		fmt.Fprintf(a.out, "  Total minutes: %d\n", span.TotalMinutes())
		fmt.Fprintf(a.out, "  Total seconds: %d\n", span.TotalSeconds())
		return nil
	}
}

func bindInfo(fs *pflag.FlagSet) func(*app, *pflag.FlagSet) error {
	return func(a *app, fs *pflag.FlagSet) error {
		if fs.NArg() < 1 || fs.NArg() > 2 {
			return errors.New("info needs a year and an optional month")
		}
		year, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", fs.Arg(0), err)
		}
		if year < datetime.MinYear || year > datetime.MaxYear {
			return a.calendarError("info", errs.OutOfRange("info", "year", int64(year), datetime.MinYear, datetime.MaxYear))
		}

		fmt.Fprintf(a.out, "Year %d\n", year)
		fmt.Fprintf(a.out, "  Leap year:   %t\n", datetime.IsLeapYear(year))
		fmt.Fprintf(a.out, "  Days:        %d\n", datetime.DaysInYear(year))

		jan1 := datetime.Must(datetime.New(year, 1, 1))
		fmt.Fprintf(a.out, "  Starts on:   %s\n", jan1.DayOfWeek())

		if fs.NArg() == 2 {
			month, err := strconv.Atoi(fs.Arg(1))
			if err != nil {
				return fmt.Errorf("invalid month %q: %w", fs.Arg(1), err)
			}
			n, err := datetime.DaysInMonth(year, month)
			if err != nil {
				return a.calendarError("info", err)
			}
			first := datetime.Must(datetime.New(year, month, 1))
			fmt.Fprintf(a.out, "%s %d\n", datetime.Month(month), year)
			fmt.Fprintf(a.out, "  Days:        %d\n", n)
			fmt.Fprintf(a.out, "  Starts on:   %s\n", first.DayOfWeek())
			fmt.Fprintf(a.out, "  Day of year: %d\n", first.DayOfYear())
		}
		return nil
	}
}

// calendarError counts and logs a rejected calendar operation and returns
// err for the caller to report.
func (a *app) calendarError(op string, err error) error {
	a.metrics.CalendarErrors.WithLabelValues(op).Inc()

	var re *errs.RangeError
	if errors.As(err, &re) {
		a.log.Debug("calendar operation rejected", logging.Fields(re.LogFields())...)
	} else {
		a.log.Debug("calendar operation rejected", zap.String("op", op), zap.Error(err))
	}
	return err
}
