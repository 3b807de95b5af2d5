package wallclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BYTE-6D65/ticktime/pkg/datetime"
	"github.com/BYTE-6D65/ticktime/pkg/timespan"
)

var _ datetime.Source = (*System)(nil)
var _ datetime.Source = (*Fixed)(nil)

func TestSystem_UTCMatchesTimeNow(t *testing.T) {
	src := NewSystem()

	before := time.Now().UTC()
	now, err := datetime.NowUTC(src)
	require.NoError(t, err)
	after := time.Now().UTC()

	got := now.Time()
	assert.False(t, got.Before(before.Truncate(100*time.Nanosecond)), "%v before %v", got, before)
	assert.False(t, got.After(after), "%v after %v", got, after)
}

func TestSystem_LocalIsUTCPlusOffset(t *testing.T) {
	src := NewSystem()

	utc := int64(src.UTCTicks())
	local := int64(src.LocalTicks())
	offset := src.ZoneOffset()

	// Readings are taken at different instants; allow a second of drift.
	assert.InDelta(t, float64(utc+offset), float64(local), float64(timespan.TicksPerSecond))
	assert.Zero(t, offset%timespan.TicksPerMinute)
}

func TestSystem_FileTimeRoundTrip(t *testing.T) {
	src := NewSystem()

	ft := src.FileTime()
	local := src.TicksFromFileTime(ft)
	assert.Equal(t, ft, src.FileTimeFromTicks(local))

	now, err := datetime.Now(src)
	require.NoError(t, err)
	back, err := datetime.FromFileTime(src, now.ToFileTime(src))
	require.NoError(t, err)
	assert.Equal(t, now, back)

	// A file time is UTC-based: converting it gives local wall time.
	assert.InDelta(t, float64(src.LocalTicks()), float64(local), float64(timespan.TicksPerSecond))
}

func TestFixed(t *testing.T) {
	start := datetime.Must(datetime.NewWithMillis(2011, 5, 1, 14, 30, 40, 300))
	src := NewFixed(start, timespan.Must(timespan.NewHMS(8, 0, 0)))

	now, err := datetime.Now(src)
	require.NoError(t, err)
	assert.Equal(t, start, now)

	utc, err := datetime.NowUTC(src)
	require.NoError(t, err)
	assert.Equal(t, 6, utc.Hour())
	assert.Equal(t, 8*timespan.TicksPerHour, src.ZoneOffset())

	today, err := datetime.Today(src)
	require.NoError(t, err)
	assert.Equal(t, start.Date(), today)

	assert.Equal(t, start.Ticks(), src.FileTime())
	assert.Equal(t, uint64(42), src.TicksFromFileTime(42))
	assert.Equal(t, uint64(42), src.FileTimeFromTicks(42))
}

func TestFixed_SetAndAdvance(t *testing.T) {
	src := NewFixed(datetime.MinValue, 0)

	require.NoError(t, src.Advance(timespan.Must(timespan.New(1, 2, 3, 4, 5))))
	now, err := datetime.Now(src)
	require.NoError(t, err)
	assert.Equal(t, 2, now.Day())
	assert.Equal(t, 2, now.Hour())
	assert.Equal(t, 5, now.Millisecond())

	assert.Error(t, src.Advance(timespan.FromTicks(-timespan.TicksPerDay*2)))

	src.Set(datetime.MaxValue)
	assert.Error(t, src.Advance(timespan.FromTicks(1)))

	src.SetZoneOffset(timespan.Must(timespan.NewHMS(-5, 0, 0)))
	_, err = datetime.NowUTC(src)
	assert.Error(t, err, "UTC of MaxValue with a negative offset is past year 9999")
}
