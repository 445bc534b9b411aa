package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests can inject a fake clock via SetClock, and an overlay
// layer is itself a Clock whose time stops while the layer is paused.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

// packageClock forwards to whichever clock SetClock installed last.
type packageClock struct{}

func (packageClock) Now() time.Time { return Now() }

// DefaultClock returns a Clock that always reads the package-level clock,
// including clocks installed later with SetClock.
func DefaultClock() Clock { return packageClock{} }
