package graphics

import "fmt"

// kappa is the cubic bezier control distance, relative to the radius, that
// best approximates a quarter circle.
const kappa = 0.5522847498307936

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector outline.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close, or use
// [RoundedRectPath] for the mask outline.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// RoundedRectPath returns the clockwise outline of rr.
func RoundedRectPath(rr RRect) *Path {
	p := NewPath()
	p.AddRRect(rr)
	return p
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpQuadTo, Args: []float64{x1, y1, x2, y2}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// AddRRect appends a closed clockwise subpath outlining rr.
func (p *Path) AddRRect(rr RRect) {
	p.addRRect(rr, true)
}

// AddRRectCounterClockwise appends a closed counter-clockwise subpath
// outlining rr. Combined with a clockwise outer outline under nonzero
// winding it cuts a hole.
func (p *Path) AddRRectCounterClockwise(rr RRect) {
	p.addRRect(rr, false)
}

func (p *Path) addRRect(rr RRect, clockwise bool) {
	l, t, r, b := rr.Rect.Left, rr.Rect.Top, rr.Rect.Right, rr.Rect.Bottom
	rad := rr.Radius
	k := rad * (1 - kappa)

	if clockwise {
		p.MoveTo(l+rad, t)
		p.LineTo(r-rad, t)
		p.CubicTo(r-k, t, r, t+k, r, t+rad)
		p.LineTo(r, b-rad)
		p.CubicTo(r, b-k, r-k, b, r-rad, b)
		p.LineTo(l+rad, b)
		p.CubicTo(l+k, b, l, b-k, l, b-rad)
		p.LineTo(l, t+rad)
		p.CubicTo(l, t+k, l+k, t, l+rad, t)
	} else {
		p.MoveTo(l+rad, t)
		p.CubicTo(l+k, t, l, t+k, l, t+rad)
		p.LineTo(l, b-rad)
		p.CubicTo(l, b-k, l+k, b, l+rad, b)
		p.LineTo(r-rad, b)
		p.CubicTo(r-k, b, r, b-k, r, b-rad)
		p.LineTo(r, t+rad)
		p.CubicTo(r, t+k, r-k, t, r-rad, t)
	}
	p.Close()
}

// Transformed returns a copy of the path with every point mapped through m
// about origin.
func (p *Path) Transformed(m Transform, origin Offset) *Path {
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			pt := m.Apply(Offset{X: cmd.Args[j], Y: cmd.Args[j+1]}, origin)
			args[j], args[j+1] = pt.X, pt.Y
		}
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}

// Translate returns a copy of the path offset by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			args[j], args[j+1] = cmd.Args[j]+dx, cmd.Args[j+1]+dy
		}
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}
