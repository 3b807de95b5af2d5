//go:build !windows

package wallclock

import (
	"time"

	"github.com/BYTE-6D65/ticktime/pkg/datetime"
	"github.com/BYTE-6D65/ticktime/pkg/timespan"
)

func systemFileTime() uint64 {
	return ticksOf(time.Now().UTC()) - datetime.FileTimeEpochTicks
}

func zoneOffset() int64 {
	_, off := time.Now().Zone()
	return int64(off) * timespan.TicksPerSecond
}
