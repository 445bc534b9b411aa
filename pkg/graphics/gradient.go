package graphics

// GradientStop defines a color stop within a gradient. Position is measured
// along the gradient axis and may fall outside [0, 1] while a sweep scrolls
// stops through the visible window.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points in unit-square
// coordinates of the surface it fills.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) LinearGradient {
	return LinearGradient{
		Start: start,
		End:   end,
		Stops: cloneGradientStops(stops),
	}
}

// IsValid reports whether the gradient has usable stops and a non-degenerate axis.
func (g LinearGradient) IsValid() bool {
	if len(g.Stops) == 0 {
		return false
	}
	return !floatEqual(g.Start.X, g.End.X) || !floatEqual(g.Start.Y, g.End.Y)
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
