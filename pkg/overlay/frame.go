package overlay

import (
	"github.com/go-drift/border/pkg/graphics"
)

// Frame is everything a host needs to draw the overlay for one frame.
type Frame struct {
	State State
	Pose  Pose

	// BorderFrame is where the gradient view sits, morphing during rotation.
	BorderFrame graphics.Rect
	// MaskFrame is the mask's frame; it never animates.
	MaskFrame graphics.Rect
	// Ring is the presentation outline the ring is stroked along.
	Ring     graphics.RRect
	RingPath *graphics.Path

	BorderWidth float64

	// Gradient holds the sorted stops at the current sweep position.
	Gradient  graphics.LinearGradient
	Locations []float64
	Colors    []graphics.Color

	Paused bool
}

// Frame samples the overlay at the current time.
func (b *Border) Frame() Frame {
	locations := b.locations()
	ring := b.presentationRRect()
	return Frame{
		State:       b.state,
		Pose:        b.pose,
		BorderFrame: b.presentationBorderFrame(),
		MaskFrame:   b.mask.Frame,
		Ring:        ring,
		RingPath:    graphics.RoundedRectPath(ring),
		BorderWidth: b.metrics.BorderWidth,
		Gradient:    b.schedule.Frame(locations),
		Locations:   locations,
		Colors:      b.schedule.Colors(),
		Paused:      b.layer.IsPaused(),
	}
}
