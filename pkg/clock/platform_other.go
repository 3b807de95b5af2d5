//go:build !windows

package clock

const platformName = "system"

func newPlatformSource() (Source, error) {
	return NewSystemClock(), nil
}
