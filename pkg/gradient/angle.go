package gradient

import (
	"fmt"
	"strings"

	"github.com/go-drift/border/pkg/graphics"
)

// Angle is the direction the gradient travels. Picture a unit circle and
// the line through its center at the given angle: the sweep moves from the
// circle's edge toward the center along that line.
type Angle int

const (
	Slope90  Angle = iota // top to bottom
	Slope135              // top left to bottom right
	Slope180              // left to right
	Slope225              // bottom left to top right
	Slope270              // bottom to top
	Slope360              // right to left
)

var angleNames = [...]string{
	Slope90:  "slope90",
	Slope135: "slope135",
	Slope180: "slope180",
	Slope225: "slope225",
	Slope270: "slope270",
	Slope360: "slope360",
}

// String returns the configuration name of the angle.
func (a Angle) String() string {
	if a.Valid() {
		return angleNames[a]
	}
	return fmt.Sprintf("Angle(%d)", int(a))
}

// Valid reports whether a is one of the defined angles.
func (a Angle) Valid() bool {
	return a >= Slope90 && a <= Slope360
}

// Points returns the gradient axis as start and end points in the unit
// square of the surface being filled.
func (a Angle) Points() (start, end graphics.Offset) {
	switch a {
	case Slope90:
		return graphics.Offset{X: 0.5, Y: 0}, graphics.Offset{X: 0.5, Y: 1}
	case Slope135:
		return graphics.Offset{X: 0, Y: 0}, graphics.Offset{X: 1, Y: 1}
	case Slope180:
		return graphics.Offset{X: 0, Y: 0.5}, graphics.Offset{X: 1, Y: 0.5}
	case Slope225:
		return graphics.Offset{X: 0, Y: 1}, graphics.Offset{X: 1, Y: 0}
	case Slope270:
		return graphics.Offset{X: 0.5, Y: 1}, graphics.Offset{X: 0.5, Y: 0}
	case Slope360:
		return graphics.Offset{X: 1, Y: 0.5}, graphics.Offset{X: 0, Y: 0.5}
	default:
		return graphics.Offset{}, graphics.Offset{}
	}
}

// ParseAngle accepts "slope225", "225" or "225deg".
func ParseAngle(s string) (Angle, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	in = strings.TrimSuffix(strings.TrimPrefix(in, "slope"), "deg")
	for a, name := range angleNames {
		if strings.TrimPrefix(name, "slope") == in {
			return Angle(a), nil
		}
	}
	return 0, fmt.Errorf("unknown gradient angle %q", s)
}
