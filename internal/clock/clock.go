// Package clock abstracts the wall-clock time source so the renderer can be
// driven by a fixed instant in snapshots and tests.
package clock

import "time"

// Clock is an interface for time operations.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}

var (
	_ Clock = RealClock{}
	_ Clock = FixedClock{}
)
