package layer

import (
	"slices"
	"time"
)

// Animation interpolates a vector of values from From to To. It is a plain
// value: attaching it to a layer stores a copy.
type Animation struct {
	// Key identifies the animated property. Attaching replaces any animation
	// with the same key.
	Key string

	From []float64
	To   []float64

	Duration time.Duration

	// Curve shapes progress. Nil means linear.
	Curve func(float64) float64

	// RepeatForever restarts from From at every multiple of Duration.
	RepeatForever bool

	// RemovedOnCompletion drops a finished, non-repeating animation so the
	// layer shows its model value again. When false the final value holds.
	RemovedOnCompletion bool

	// BeginTime is the layer-local time the animation started at.
	BeginTime time.Duration
}

// Progress returns the curved progress at layer-local time.
func (a Animation) Progress(local time.Duration) float64 {
	elapsed := local - a.BeginTime
	var t float64
	switch {
	case elapsed <= 0:
		t = 0
	case a.Duration <= 0:
		t = 1
	case a.RepeatForever:
		t = float64(elapsed%a.Duration) / float64(a.Duration)
	case elapsed >= a.Duration:
		t = 1
	default:
		t = float64(elapsed) / float64(a.Duration)
	}
	if a.Curve != nil {
		return a.Curve(t)
	}
	return t
}

// Finished reports whether a non-repeating animation has run its course.
func (a Animation) Finished(local time.Duration) bool {
	return !a.RepeatForever && local-a.BeginTime >= a.Duration
}

// Sample returns the interpolated values at layer-local time.
func (a Animation) Sample(local time.Duration) []float64 {
	t := a.Progress(local)
	out := make([]float64, len(a.To))
	for i := range a.To {
		from := a.To[i]
		if i < len(a.From) {
			from = a.From[i]
		}
		out[i] = from + (a.To[i]-from)*t
	}
	return out
}

// clone returns a copy that shares no slices with a.
func (a Animation) clone() Animation {
	a.From = slices.Clone(a.From)
	a.To = slices.Clone(a.To)
	return a
}
