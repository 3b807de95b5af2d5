package clock

import "time"

// ToSeconds converts a tick count of src to seconds.
func ToSeconds(src Source, t Tick) float64 {
	return float64(t) / float64(src.TicksPerSecond())
}

// ToMillis converts a tick count of src to milliseconds.
func ToMillis(src Source, t Tick) float64 {
	return float64(t) * 1e3 / float64(src.TicksPerSecond())
}

// ToMicros converts a tick count of src to microseconds.
func ToMicros(src Source, t Tick) float64 {
	return float64(t) * 1e6 / float64(src.TicksPerSecond())
}

// FromSeconds converts seconds to a tick count of src, truncating.
func FromSeconds(src Source, s float64) Tick {
	return Tick(s * float64(src.TicksPerSecond()))
}

// FromMillis converts milliseconds to a tick count of src, truncating.
func FromMillis(src Source, ms float64) Tick {
	return Tick(ms * float64(src.TicksPerSecond()) / 1e3)
}

// FromMicros converts microseconds to a tick count of src, truncating.
func FromMicros(src Source, us float64) Tick {
	return Tick(us * float64(src.TicksPerSecond()) / 1e6)
}

// Seconds returns the current reading of src in seconds.
func Seconds(src Source) float64 {
	return ToSeconds(src, src.Now())
}

// ToDuration converts a tick count of src to a time.Duration.
// Whole seconds and the remainder are scaled separately so large counts
// do not overflow.
func ToDuration(src Source, t Tick) time.Duration {
	tps := src.TicksPerSecond()
	sec := int64(t) / tps
	rem := int64(t) % tps
	return time.Duration(sec)*time.Second + time.Duration(rem*int64(time.Second)/tps)
}

// FromDuration converts a time.Duration to a tick count of src.
func FromDuration(src Source, d time.Duration) Tick {
	tps := src.TicksPerSecond()
	sec := int64(d / time.Second)
	rem := int64(d % time.Second)
	return Tick(sec*tps + rem*tps/int64(time.Second))
}
