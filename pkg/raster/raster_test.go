package raster_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/go-drift/border/pkg/gradient"
	"github.com/go-drift/border/pkg/graphics"
	"github.com/go-drift/border/pkg/overlay"
	"github.com/go-drift/border/pkg/raster"
	drifttest "github.com/go-drift/border/pkg/testing"
)

var surface = graphics.RectFromLTWH(0, 0, 200, 100)

func testFrame(t *testing.T) overlay.Frame {
	t.Helper()
	b := overlay.New(surface, overlay.DefaultMetrics(), overlay.WithClock(drifttest.NewFakeClock()))
	b.SetCornerRadius(40)
	b.Configure(gradient.Options{
		Palette:   gradient.Palette{graphics.RGB(255, 0, 0), graphics.RGB(0, 0, 255)},
		Gradation: 2,
		Angle:     gradient.Slope180,
		Cycle:     time.Second,
	})
	return b.Frame()
}

func alphaAt(t *testing.T, f overlay.Frame, x, y int) uint8 {
	t.Helper()
	img := raster.Render(f, surface)
	return img.RGBAAt(x, y).A
}

func TestRender_RingCoverage(t *testing.T) {
	f := testFrame(t)
	img := raster.Render(f, surface)

	if got := img.Bounds().Size(); got.X != 200 || got.Y != 100 {
		t.Fatalf("image size = %v, want 200x100", got)
	}
	if a := img.RGBAAt(100, 3).A; a != 255 {
		t.Errorf("edge pixel alpha = %d, want 255", a)
	}
	if a := img.RGBAAt(100, 50).A; a != 0 {
		t.Errorf("center pixel alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner pixel outside the rounded ring alpha = %d, want 0", a)
	}
}

func TestRender_GradientAlongAxis(t *testing.T) {
	f := testFrame(t)
	img := raster.Render(f, surface)

	// The first frame of a two-color left-to-right sweep runs red to blue.
	left := img.RGBAAt(4, 50)
	right := img.RGBAAt(195, 50)
	if left.R <= left.B {
		t.Errorf("left edge %v should be mostly red", left)
	}
	if right.B <= right.R {
		t.Errorf("right edge %v should be mostly blue", right)
	}
}

func TestRender_Opacity(t *testing.T) {
	f := testFrame(t)
	f.Pose = overlay.Pose{Transform: graphics.Identity(), Opacity: 0.2}
	if a := alphaAt(t, f, 100, 3); a < 49 || a > 53 {
		t.Errorf("alpha at 0.2 opacity = %d, want about 51", a)
	}
}

func TestRender_HiddenPoseScalesOutward(t *testing.T) {
	f := testFrame(t)
	f.Pose = overlay.Pose{Transform: graphics.Scale(1.5, 1.5), Opacity: 1}
	// Scaled about the center, the top band moves above the surface.
	if a := alphaAt(t, f, 100, 3); a != 0 {
		t.Errorf("alpha = %d, want 0 once the ring is scaled offscreen", a)
	}
}

func TestRender_EmptyFrame(t *testing.T) {
	img := raster.Render(overlay.Frame{}, surface)
	for y := 0; y < 100; y += 10 {
		for x := 0; x < 200; x += 10 {
			if c := img.RGBAAt(x, y); c != (color.RGBA{}) {
				t.Fatalf("pixel (%d,%d) = %v, want transparent", x, y, c)
			}
		}
	}
}

func TestRingPath_Contours(t *testing.T) {
	rr := graphics.RRectFromRectAndRadius(surface, 40)
	p := raster.RingPath(rr, 20)
	moves := 0
	for _, cmd := range p.Commands {
		if cmd.Op == graphics.PathOpMoveTo {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("ring has %d contours, want 2", moves)
	}

	thick := raster.RingPath(graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(0, 0, 10, 10), 2), 20)
	moves = 0
	for _, cmd := range thick.Commands {
		if cmd.Op == graphics.PathOpMoveTo {
			moves++
		}
	}
	if moves != 1 {
		t.Errorf("a ring wider than its rect should be a single contour, got %d", moves)
	}
}
