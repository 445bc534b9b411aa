package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector. Gradient endpoints use unit-square
// coordinates, geometry uses points.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in points.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Inset shrinks the rectangle by d on every side. A negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Left:   r.Left + d,
		Top:    r.Top + d,
		Right:  r.Right - d,
		Bottom: r.Bottom - d,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Equal reports whether two rects match within floating-point tolerance.
func (r Rect) Equal(other Rect) bool {
	return floatEqual(r.Left, other.Left) &&
		floatEqual(r.Top, other.Top) &&
		floatEqual(r.Right, other.Right) &&
		floatEqual(r.Bottom, other.Bottom)
}

// LerpRect linearly interpolates every edge of a toward b.
func LerpRect(a, b Rect, t float64) Rect {
	return Rect{
		Left:   a.Left + (b.Left-a.Left)*t,
		Top:    a.Top + (b.Top-a.Top)*t,
		Right:  a.Right + (b.Right-a.Right)*t,
		Bottom: a.Bottom + (b.Bottom-a.Bottom)*t,
	}
}

// RRect is a rectangle with a uniform corner radius.
type RRect struct {
	Rect   Rect
	Radius float64
}

// RRectFromRectAndRadius creates a rounded rectangle. The radius is clamped
// to half the shorter side, so a large radius yields a capsule.
func RRectFromRectAndRadius(rect Rect, radius float64) RRect {
	limit := math.Min(rect.Width(), rect.Height()) / 2
	if limit < 0 {
		limit = 0
	}
	return RRect{Rect: rect, Radius: math.Max(0, math.Min(radius, limit))}
}

// Inset shrinks the rounded rect by d on every side, keeping the outline
// parallel: the radius shrinks by d as well.
func (r RRect) Inset(d float64) RRect {
	return RRectFromRectAndRadius(r.Rect.Inset(d), r.Radius-d)
}

// Equal reports whether two rounded rects match within tolerance.
func (r RRect) Equal(other RRect) bool {
	return r.Rect.Equal(other.Rect) && floatEqual(r.Radius, other.Radius)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
