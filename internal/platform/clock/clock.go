package clock

import "time"

// Clock abstracts time so request timing stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Since is the time elapsed on c since start, never negative.
func Since(c Clock, start time.Time) time.Duration {
	if d := c.Now().Sub(start); d > 0 {
		return d
	}
	return 0
}
