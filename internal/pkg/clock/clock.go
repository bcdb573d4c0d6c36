// Package clock abstracts the current time so lifecycle timestamps can be
// asserted exactly in tests instead of being compared against tolerance
// windows.
package clock

import "time"

// Clock supplies the current time to components that stamp timestamps.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by time.Now.
type System struct{}

// NewSystem returns the wall-clock implementation used in production wiring.
func NewSystem() System {
	return System{}
}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	instant time.Time
}

// NewFixed returns a Clock that always reports the given instant.
func NewFixed(instant time.Time) Fixed {
	return Fixed{instant: instant}
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return f.instant
}
