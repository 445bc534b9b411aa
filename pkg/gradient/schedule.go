// Package gradient computes the stop schedule behind the border's endlessly
// scrolling multi-color sweep.
//
// A sweep shows Gradation colors of the palette at a time and scrolls them
// along the gradient axis. [Compute] lays out enough stops that the window
// visible when the animation ends shows exactly the colors visible when it
// began, so restarting the animation from its first frame is invisible and
// the scroll appears to run forever.
//
// The package is pure: it holds no state and every call with the same
// [Options] returns the same schedule.
package gradient

import (
	"fmt"
	"time"

	"github.com/go-drift/border/pkg/errors"
	"github.com/go-drift/border/pkg/graphics"
)

// LocationsKey is the key under which the sweep animation is attached to a layer.
const LocationsKey = "locations"

// Palette is the ordered list of colors the sweep cycles through. Order
// defines the sweep direction.
type Palette []graphics.Color

// Options configures a sweep.
type Options struct {
	// Palette must contain at least one color.
	Palette Palette
	// Gradation is the number of colors visible at once; 1 < Gradation <= len(Palette).
	Gradation int
	// Angle is the direction of travel.
	Angle Angle
	// Cycle is how long the sweep takes to show the whole palette once.
	Cycle time.Duration
	// ReduceMotion suppresses the animation and keeps the first frame.
	ReduceMotion bool
}

// Stop is one entry of a schedule: the location the stop starts the cycle
// at, the location it ends at, and its color.
type Stop struct {
	Start float64
	End   float64
	Color graphics.Color
}

// StopSchedule is the immutable result of [Compute]. Accessors return copies.
type StopSchedule struct {
	stops    []Stop
	angle    Angle
	duration time.Duration
}

// Validate reports the first constraint opts violates as a
// *errors.ConfigError, or nil.
func Validate(opts Options) error {
	n := len(opts.Palette)
	switch {
	case n == 0:
		return &errors.ConfigError{Field: "palette", Value: n, Reason: "must contain at least one color"}
	case opts.Gradation <= 1:
		return &errors.ConfigError{Field: "gradation", Value: opts.Gradation, Reason: "must be greater than 1"}
	case opts.Gradation > n:
		return &errors.ConfigError{Field: "gradation", Value: opts.Gradation, Reason: fmt.Sprintf("must not exceed palette length %d", n)}
	case opts.Cycle <= 0:
		return &errors.ConfigError{Field: "cycle", Value: opts.Cycle, Reason: "must be positive"}
	case !opts.Angle.Valid():
		return &errors.ConfigError{Field: "angle", Value: opts.Angle, Reason: "unknown angle"}
	}
	return nil
}

// TotalStops returns the number of stops a sweep of paletteLen colors with
// the given gradation uses: one pass over the palette per visible color, plus
// gradation mod paletteLen extra stops so the closing window lines up with
// the opening one.
func TotalStops(paletteLen, gradation int) int {
	return paletteLen*gradation + gradation%paletteLen
}

// Compute builds the stop schedule and the sweep animation for opts. The
// descriptor is nil when opts.ReduceMotion is set.
//
// Compute panics with a *errors.ConfigError if opts is invalid: a bad
// gradation is a static programming mistake, not a runtime condition.
func Compute(opts Options) (StopSchedule, *AnimationDescriptor) {
	errors.Must(Validate(opts))

	n := len(opts.Palette)
	total := TotalStops(n, opts.Gradation)
	// Integer stop arithmetic: the padding never adds a whole palette pass.
	duration := opts.Cycle * time.Duration(total/n)
	interval := 1.0 / float64(opts.Gradation-1)

	startPoints := make([]float64, total)
	endPoints := make([]float64, total)
	colors := make([]graphics.Color, total)
	for i := range total {
		startPoints[i] = 1 - float64(i)*interval
		endPoints[i] = float64(i) * interval
		colors[i] = opts.Palette[i%n]
	}

	// startPoints descends; the schedule exposes it ascending.
	from := make([]float64, total)
	for i := range total {
		from[i] = startPoints[total-1-i]
	}

	stops := make([]Stop, total)
	for i := range total {
		stops[i] = Stop{Start: from[i], End: endPoints[i], Color: colors[i]}
	}
	schedule := StopSchedule{stops: stops, angle: opts.Angle, duration: duration}

	if opts.ReduceMotion {
		return schedule, nil
	}
	return schedule, &AnimationDescriptor{
		Key:                 LocationsKey,
		From:                from,
		To:                  endPoints,
		Duration:            duration,
		RepeatForever:       true,
		FillMode:            FillForwards,
		RemovedOnCompletion: false,
	}
}

// Len returns the number of stops.
func (s StopSchedule) Len() int {
	return len(s.stops)
}

// IsZero reports whether the schedule was never computed.
func (s StopSchedule) IsZero() bool {
	return len(s.stops) == 0
}

// Stops returns a copy of the stops.
func (s StopSchedule) Stops() []Stop {
	out := make([]Stop, len(s.stops))
	copy(out, s.stops)
	return out
}

// Colors returns the stop colors in schedule order.
func (s StopSchedule) Colors() []graphics.Color {
	out := make([]graphics.Color, len(s.stops))
	for i, st := range s.stops {
		out[i] = st.Color
	}
	return out
}

// StartLocations returns the ascending locations of the first frame.
func (s StopSchedule) StartLocations() []float64 {
	out := make([]float64, len(s.stops))
	for i, st := range s.stops {
		out[i] = st.Start
	}
	return out
}

// EndLocations returns the locations of the last frame.
func (s StopSchedule) EndLocations() []float64 {
	out := make([]float64, len(s.stops))
	for i, st := range s.stops {
		out[i] = st.End
	}
	return out
}

// Angle returns the direction of travel.
func (s StopSchedule) Angle() Angle {
	return s.angle
}

// Duration returns the length of one full animation pass, padding included.
func (s StopSchedule) Duration() time.Duration {
	return s.duration
}
