package countdown

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

var _ Clock = RealClock{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}
