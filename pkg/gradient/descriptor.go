package gradient

import (
	"fmt"
	"time"
)

// FillMode says what a finished, non-repeating animation shows.
type FillMode int

const (
	// FillRemoved shows the model value once the animation ends.
	FillRemoved FillMode = iota
	// FillForwards holds the final animated value.
	FillForwards
)

func (m FillMode) String() string {
	switch m {
	case FillRemoved:
		return "removed"
	case FillForwards:
		return "forwards"
	default:
		return fmt.Sprintf("FillMode(%d)", int(m))
	}
}

// AnimationDescriptor describes the sweep as plain data: any renderer can
// interpolate From toward To over Duration, or call [AnimationDescriptor.Sample].
type AnimationDescriptor struct {
	Key                 string
	From                []float64
	To                  []float64
	Duration            time.Duration
	RepeatForever       bool
	FillMode            FillMode
	RemovedOnCompletion bool
}

// Sample returns the locations at elapsed time since the animation began.
// Repeating animations restart from From at every multiple of Duration.
func (d *AnimationDescriptor) Sample(elapsed time.Duration) []float64 {
	return Interpolate(d.From, d.To, d.Progress(elapsed))
}

// Progress maps elapsed time to linear progress in [0, 1].
func (d *AnimationDescriptor) Progress(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if d.Duration <= 0 {
		return 1
	}
	if d.RepeatForever {
		return float64(elapsed%d.Duration) / float64(d.Duration)
	}
	if elapsed >= d.Duration {
		if d.FillMode == FillForwards {
			return 1
		}
		return 0
	}
	return float64(elapsed) / float64(d.Duration)
}

// Interpolate returns from + (to-from)*t element-wise. Elements beyond the
// shorter slice are taken from to.
func Interpolate(from, to []float64, t float64) []float64 {
	out := make([]float64, len(to))
	for i := range to {
		if i < len(from) {
			out[i] = from[i] + (to[i]-from[i])*t
		} else {
			out[i] = to[i]
		}
	}
	return out
}
