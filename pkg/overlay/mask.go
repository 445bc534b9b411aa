package overlay

import (
	"github.com/go-drift/border/pkg/graphics"
)

// MaskGeometry places the gradient view and the rounded ring that masks it.
type MaskGeometry struct {
	// BorderFrame is the gradient view's frame: the bounds pushed outward by
	// the anti-aliasing inset.
	BorderFrame graphics.Rect
	// Frame is the mask's frame within the border view: the bounds pulled
	// inward by the same inset.
	Frame graphics.Rect
	// RRect is the outline the ring is stroked along.
	RRect graphics.RRect
	// Path is RRect as a path.
	Path *graphics.Path
}

// ComputeMask derives the mask geometry for bounds.
func ComputeMask(bounds graphics.Rect, cornerRadius, inset float64) MaskGeometry {
	rr := graphics.RRectFromRectAndRadius(bounds, cornerRadius)
	return MaskGeometry{
		BorderFrame: bounds.Inset(-inset),
		Frame:       bounds.Inset(inset),
		RRect:       rr,
		Path:        graphics.RoundedRectPath(rr),
	}
}

// rrectValues flattens a rounded rect for layer animation.
func rrectValues(rr graphics.RRect) []float64 {
	return []float64{rr.Rect.Left, rr.Rect.Top, rr.Rect.Right, rr.Rect.Bottom, rr.Radius}
}

func rrectFromValues(v []float64) graphics.RRect {
	return graphics.RRectFromRectAndRadius(rectFromValues(v), v[4])
}

func rectValues(r graphics.Rect) []float64 {
	return []float64{r.Left, r.Top, r.Right, r.Bottom}
}

func rectFromValues(v []float64) graphics.Rect {
	return graphics.Rect{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}
}
