// Package clock abstracts time.Now so calculations can be driven by a fixed
// instant in tests and in "what if" requests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock returns the local system time.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

// FuncClock adapts a function to Clock.
type FuncClock func() time.Time

func (f FuncClock) Now() time.Time {
	return f()
}
