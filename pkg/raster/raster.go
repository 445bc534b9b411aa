// Package raster draws overlay frames in software.
//
// The ring is rasterized with golang.org/x/image/vector as two rounded
// rects of opposite winding, and filled from an image.Image that samples the
// frame's gradient, so the result matches what a compositor would show with
// a gradient layer masked by a stroked shape layer.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/border/pkg/gradient"
	"github.com/go-drift/border/pkg/graphics"
	"github.com/go-drift/border/pkg/overlay"
)

// lutSize is the number of gradient samples taken along the axis per frame.
const lutSize = 512

// Render draws f over a transparent image covering bounds.
func Render(f overlay.Frame, bounds graphics.Rect) *image.RGBA {
	r := image.Rect(
		int(math.Floor(bounds.Left)), int(math.Floor(bounds.Top)),
		int(math.Ceil(bounds.Right)), int(math.Ceil(bounds.Bottom)),
	)
	dst := image.NewRGBA(r)
	Draw(dst, f)
	return dst
}

// Draw composites f onto dst. Nothing is drawn for a frame without stops or
// with zero opacity.
func Draw(dst draw.Image, f overlay.Frame) {
	if len(f.Gradient.Stops) == 0 || f.Pose.Opacity <= 0 || f.BorderFrame.IsEmpty() {
		return
	}
	r := dst.Bounds()
	if r.Empty() {
		return
	}

	center := f.BorderFrame.Center()
	ring := RingPath(f.Ring, f.BorderWidth).
		Transformed(f.Pose.Transform, center).
		Translate(-float64(r.Min.X), -float64(r.Min.Y))

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	addPath(z, ring)
	z.Draw(dst, r, newGradientSource(f), r.Min)
}

// RingPath returns the band of width w centered on rr's outline: the outer
// edge clockwise and the inner edge counter-clockwise so the middle cancels.
func RingPath(rr graphics.RRect, w float64) *graphics.Path {
	p := graphics.NewPath()
	p.AddRRect(rr.Inset(-w / 2))
	if inner := rr.Inset(w / 2); !inner.Rect.IsEmpty() {
		p.AddRRectCounterClockwise(inner)
	}
	return p
}

func addPath(z *vector.Rasterizer, p *graphics.Path) {
	for _, cmd := range p.Commands {
		a := make([]float32, len(cmd.Args))
		for i, v := range cmd.Args {
			a[i] = float32(v)
		}
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			z.MoveTo(a[0], a[1])
		case graphics.PathOpLineTo:
			z.LineTo(a[0], a[1])
		case graphics.PathOpQuadTo:
			z.QuadTo(a[0], a[1], a[2], a[3])
		case graphics.PathOpCubicTo:
			z.CubeTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case graphics.PathOpClose:
			z.ClosePath()
		}
	}
}

// gradientSource is an unbounded image whose pixels are the frame's
// gradient, laid over the border frame and carried by the pose.
type gradientSource struct {
	frame   graphics.Rect
	pose    overlay.Pose
	center  graphics.Offset
	start   graphics.Offset
	end     graphics.Offset
	lut     [lutSize]color.RGBA
	opacity float64
}

func newGradientSource(f overlay.Frame) *gradientSource {
	s := &gradientSource{
		frame:   f.BorderFrame,
		pose:    f.Pose,
		center:  f.BorderFrame.Center(),
		start:   f.Gradient.Start,
		end:     f.Gradient.End,
		opacity: min(f.Pose.Opacity, 1),
	}
	for i := range s.lut {
		c := gradient.ColorAt(f.Gradient.Stops, float64(i)/(lutSize-1))
		s.lut[i] = premultiply(c, s.opacity)
	}
	return s
}

func premultiply(c graphics.Color, opacity float64) color.RGBA {
	r, g, b, a := c.RGBAF()
	a *= opacity
	return color.RGBA{
		R: uint8(math.Round(r * a * 255)),
		G: uint8(math.Round(g * a * 255)),
		B: uint8(math.Round(b * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func (s *gradientSource) ColorModel() color.Model { return color.RGBAModel }

func (s *gradientSource) Bounds() image.Rectangle {
	return image.Rect(-1<<24, -1<<24, 1<<24, 1<<24)
}

func (s *gradientSource) At(x, y int) color.Color {
	p := s.pose.Transform.Invert(graphics.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}, s.center)
	if p.X < s.frame.Left || p.X > s.frame.Right || p.Y < s.frame.Top || p.Y > s.frame.Bottom {
		return color.RGBA{}
	}
	unit := graphics.Offset{
		X: (p.X - s.frame.Left) / s.frame.Width(),
		Y: (p.Y - s.frame.Top) / s.frame.Height(),
	}
	t := min(max(gradient.Project(unit, s.start, s.end), 0), 1)
	return s.lut[int(math.Round(t*(lutSize-1)))]
}
