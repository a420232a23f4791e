package datemath

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The UI reads "today" from it on every render pass and hands the value
// down explicitly, so the calculation functions stay pure.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
