package gradient

import (
	"slices"

	"github.com/go-drift/border/pkg/graphics"
)

const seamEpsilon = 1e-9

// VisibleAtStart returns the colors whose first-frame location lies in
// [0, 1], ordered by location.
func (s StopSchedule) VisibleAtStart() []graphics.Color {
	return s.visible(func(st Stop) float64 { return st.Start })
}

// VisibleAtEnd returns the colors whose last-frame location lies in [0, 1],
// ordered by location.
func (s StopSchedule) VisibleAtEnd() []graphics.Color {
	return s.visible(func(st Stop) float64 { return st.End })
}

// Seamless reports whether the last frame shows the same colors in the same
// order as the first, so wrapping the animation is invisible.
func (s StopSchedule) Seamless() bool {
	return slices.Equal(s.VisibleAtStart(), s.VisibleAtEnd())
}

func (s StopSchedule) visible(loc func(Stop) float64) []graphics.Color {
	type entry struct {
		pos   float64
		color graphics.Color
	}
	var in []entry
	for _, st := range s.stops {
		p := loc(st)
		if p >= -seamEpsilon && p <= 1+seamEpsilon {
			in = append(in, entry{p, st.Color})
		}
	}
	slices.SortStableFunc(in, func(a, b entry) int {
		switch {
		case a.pos < b.pos:
			return -1
		case a.pos > b.pos:
			return 1
		}
		return 0
	})
	out := make([]graphics.Color, len(in))
	for i, e := range in {
		out[i] = e.color
	}
	return out
}

// Seamless reports whether a sweep over paletteLen distinct colors with the
// given gradation wraps without a visible jump. It is false for invalid
// combinations.
func Seamless(paletteLen, gradation int) bool {
	if paletteLen < 1 || gradation <= 1 || gradation > paletteLen {
		return false
	}
	palette := make(Palette, paletteLen)
	for i := range palette {
		palette[i] = graphics.RGB(uint8(i), uint8(i>>8), 0x80)
	}
	schedule, _ := Compute(Options{Palette: palette, Gradation: gradation, Angle: Slope180, Cycle: 1})
	return schedule.Seamless()
}
