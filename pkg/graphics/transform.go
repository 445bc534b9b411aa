package graphics

// Transform is an axis-aligned scale applied about an origin. The overlay
// only ever scales its view, so a full affine matrix is not needed.
type Transform struct {
	ScaleX float64
	ScaleY float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Scale returns a transform scaling by sx and sy.
func Scale(sx, sy float64) Transform {
	return Transform{ScaleX: sx, ScaleY: sy}
}

// IsIdentity reports whether the transform leaves points unchanged.
func (m Transform) IsIdentity() bool {
	return floatEqual(m.ScaleX, 1) && floatEqual(m.ScaleY, 1)
}

// Apply maps p through the transform about origin.
func (m Transform) Apply(p, origin Offset) Offset {
	return Offset{
		X: origin.X + (p.X-origin.X)*m.ScaleX,
		Y: origin.Y + (p.Y-origin.Y)*m.ScaleY,
	}
}

// Invert maps p back through the transform about origin. A zero scale maps
// everything onto origin.
func (m Transform) Invert(p, origin Offset) Offset {
	out := origin
	if m.ScaleX != 0 {
		out.X = origin.X + (p.X-origin.X)/m.ScaleX
	}
	if m.ScaleY != 0 {
		out.Y = origin.Y + (p.Y-origin.Y)/m.ScaleY
	}
	return out
}

// LerpTransform linearly interpolates the scale factors of a toward b.
func LerpTransform(a, b Transform, t float64) Transform {
	return Transform{
		ScaleX: a.ScaleX + (b.ScaleX-a.ScaleX)*t,
		ScaleY: a.ScaleY + (b.ScaleY-a.ScaleY)*t,
	}
}
