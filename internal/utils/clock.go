package utils

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, truncated to seconds in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}
