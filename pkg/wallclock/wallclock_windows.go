//go:build windows

package wallclock

import (
	"time"

	"golang.org/x/sys/windows"

	"github.com/BYTE-6D65/ticktime/pkg/timespan"
)

const timeZoneIDDaylight = 2

func systemFileTime() uint64 {
	var ft windows.Filetime
	windows.GetSystemTimeAsFileTime(&ft)
	return uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
}

// zoneOffset follows the OS zone settings; UTC = local + bias.
func zoneOffset() int64 {
	var tzi windows.Timezoneinformation
	rc, err := windows.GetTimeZoneInformation(&tzi)
	if err != nil {
		_, off := time.Now().Zone()
		return int64(off) * timespan.TicksPerSecond
	}
	bias := tzi.Bias
	if rc == timeZoneIDDaylight {
		bias += tzi.DaylightBias
	} else {
		bias += tzi.StandardBias
	}
	return -int64(bias) * timespan.TicksPerMinute
}
