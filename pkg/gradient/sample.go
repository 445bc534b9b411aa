package gradient

import (
	"slices"
	"time"

	"github.com/go-drift/border/pkg/graphics"
)

// Frame pairs the schedule's colors with locations, sorted by position, as
// a gradient along the schedule's axis. If locations does not match the
// schedule length the first frame is used.
func (s StopSchedule) Frame(locations []float64) graphics.LinearGradient {
	if len(locations) != len(s.stops) {
		locations = s.StartLocations()
	}
	stops := make([]graphics.GradientStop, len(s.stops))
	for i, st := range s.stops {
		stops[i] = graphics.GradientStop{Position: locations[i], Color: st.Color}
	}
	slices.SortStableFunc(stops, func(a, b graphics.GradientStop) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		}
		return 0
	})
	start, end := s.angle.Points()
	return graphics.LinearGradient{Start: start, End: end, Stops: stops}
}

// At returns the gradient shown elapsed time into the sweep described by d.
// A nil d yields the first frame.
func (s StopSchedule) At(d *AnimationDescriptor, elapsed time.Duration) graphics.LinearGradient {
	if d == nil {
		return s.Frame(nil)
	}
	return s.Frame(d.Sample(elapsed))
}

// ColorAt returns the color of a sorted stop list at position t. Positions
// outside the stops clamp to the outermost colors.
func ColorAt(stops []graphics.GradientStop, t float64) graphics.Color {
	if len(stops) == 0 {
		return graphics.ColorTransparent
	}
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if t >= b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		return graphics.Lerp(a.Color, b.Color, (t-a.Position)/span)
	}
	return last.Color
}

// Project returns where p falls along the axis from start to end, with 0 at
// start and 1 at end.
func Project(p, start, end graphics.Offset) float64 {
	dx, dy := end.X-start.X, end.Y-start.Y
	den := dx*dx + dy*dy
	if den == 0 {
		return 0
	}
	return ((p.X-start.X)*dx + (p.Y-start.Y)*dy) / den
}

// ColorAtPoint samples g at p, where p is in the unit square of the filled
// surface.
func ColorAtPoint(g graphics.LinearGradient, p graphics.Offset) graphics.Color {
	return ColorAt(g.Stops, Project(p, g.Start, g.End))
}
