package clock

// NewPlatformClock returns the highest resolution tick source of the host,
// wrapped in a Monotonic guard. On Windows this is QueryPerformanceCounter;
// elsewhere it is a SystemClock.
func NewPlatformClock(opts ...Option) (*Monotonic, error) {
	src, err := newPlatformSource()
	if err != nil {
		return nil, err
	}
	return NewMonotonic(src, append([]Option{WithName(platformName)}, opts...)...), nil
}
