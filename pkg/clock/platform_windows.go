//go:build windows

package clock

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const platformName = "qpc"

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")
)

// perfCounter reads QueryPerformanceCounter.
type perfCounter struct {
	freq int64
}

func newPlatformSource() (Source, error) {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		return nil, fmt.Errorf("QueryPerformanceFrequency: %w", err)
	}
	if freq <= 0 {
		return nil, fmt.Errorf("QueryPerformanceFrequency: invalid frequency %d", freq)
	}
	return &perfCounter{freq: freq}, nil
}

func (p *perfCounter) Now() Tick {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return Tick(qpc)
}

func (p *perfCounter) TicksPerSecond() int64 {
	return p.freq
}
