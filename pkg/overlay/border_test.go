package overlay_test

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/border/pkg/animation"
	"github.com/go-drift/border/pkg/errors"
	"github.com/go-drift/border/pkg/gradient"
	"github.com/go-drift/border/pkg/graphics"
	"github.com/go-drift/border/pkg/overlay"
	drifttest "github.com/go-drift/border/pkg/testing"
)

var screen = graphics.RectFromLTWH(0, 0, 390, 844)

func sweepOptions() gradient.Options {
	return gradient.Options{
		Palette: gradient.Palette{
			graphics.RGB(104, 35, 140),
			graphics.RGB(215, 46, 210),
			graphics.RGB(86, 186, 196),
			graphics.RGB(31, 61, 120),
		},
		Gradation: 2,
		Angle:     gradient.Slope225,
		Cycle:     5 * time.Second,
	}
}

func newBorder(t *testing.T) (*overlay.Border, *drifttest.FakeClock) {
	t.Helper()
	clock := drifttest.NewFakeClock()
	b := overlay.New(screen, overlay.DefaultMetrics(), overlay.WithClock(clock))
	b.Configure(sweepOptions())
	return b, clock
}

// run advances the clock by d in frame-sized steps, ticking the border.
func run(b *overlay.Border, clock *drifttest.FakeClock, d time.Duration) {
	clock.Run(d, drifttest.DefaultFrame, b.Tick)
}

func posesClose(a, b overlay.Pose) bool {
	const eps = 1e-9
	return math.Abs(a.Transform.ScaleX-b.Transform.ScaleX) < eps &&
		math.Abs(a.Transform.ScaleY-b.Transform.ScaleY) < eps &&
		math.Abs(a.Opacity-b.Opacity) < eps
}

func TestBorder_ShowFromCold(t *testing.T) {
	b, clock := newBorder(t)

	b.Show()
	if b.State() != overlay.Showing {
		t.Fatalf("state = %v, want showing", b.State())
	}
	if !posesClose(b.Pose(), overlay.HiddenPose) {
		t.Errorf("cold show should start from the hidden pose, got %+v", b.Pose())
	}

	run(b, clock, time.Second)
	if b.State() != overlay.Shown {
		t.Errorf("state = %v, want shown", b.State())
	}
	if b.Pose() != overlay.ShownPose {
		t.Errorf("pose = %+v, want shown pose", b.Pose())
	}
}

func TestBorder_ShowOvershoots(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()

	minScale := math.Inf(1)
	for range 100 {
		run(b, clock, 10*time.Millisecond)
		minScale = min(minScale, b.Pose().Transform.ScaleX)
	}
	if minScale >= 1 {
		t.Errorf("underdamped show should dip below identity scale, min %v", minScale)
	}
}

func TestBorder_ShowWhileShowingIsNoop(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()
	run(b, clock, 200*time.Millisecond)
	before := b.Pose()

	b.Show()
	if b.Pose() != before {
		t.Errorf("second Show moved the pose: %+v -> %+v", before, b.Pose())
	}
	run(b, clock, 800*time.Millisecond)
	if b.State() != overlay.Shown {
		t.Errorf("show should still finish on its original schedule, state %v", b.State())
	}
}

func TestBorder_HideCompletes(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()
	run(b, clock, time.Second)

	calls := 0
	b.Hide(func() {
		calls++
		if b.State() != overlay.Hidden {
			t.Errorf("state inside completion = %v, want hidden", b.State())
		}
	})
	run(b, clock, 200*time.Millisecond)
	if b.State() != overlay.Hiding || calls != 0 {
		t.Fatalf("mid-hide: state %v, calls %d", b.State(), calls)
	}

	run(b, clock, 200*time.Millisecond)
	if calls != 1 {
		t.Fatalf("completion calls = %d, want 1", calls)
	}
	if b.State() != overlay.Hidden {
		t.Errorf("state = %v, want hidden", b.State())
	}
	if b.Pose() != overlay.ShownPose {
		t.Errorf("pose after hide = %+v, want reset to identity", b.Pose())
	}

	run(b, clock, time.Second)
	if calls != 1 {
		t.Errorf("completion ran again: %d", calls)
	}
}

func TestBorder_HideThenShowInterrupts(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()
	run(b, clock, time.Second)

	fired := false
	b.Hide(func() { fired = true })
	run(b, clock, 150*time.Millisecond)
	interrupted := b.Pose()
	if posesClose(interrupted, overlay.ShownPose) || posesClose(interrupted, overlay.HiddenPose) {
		t.Fatalf("hide should be mid-flight, pose %+v", interrupted)
	}

	b.Show()
	if !posesClose(b.Pose(), interrupted) {
		t.Errorf("show should start from the interrupted pose %+v, got %+v", interrupted, b.Pose())
	}
	run(b, clock, 10*time.Millisecond)
	if posesClose(b.Pose(), overlay.HiddenPose) {
		t.Error("interrupting show jumped to the hidden pose")
	}

	run(b, clock, 2*time.Second)
	if b.State() != overlay.Shown || b.Pose() != overlay.ShownPose {
		t.Errorf("final state %v pose %+v, want shown at identity", b.State(), b.Pose())
	}
	if fired {
		t.Error("interrupted hide must not call its completion")
	}
}

func TestBorder_ShowThenHideInterrupts(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()
	run(b, clock, 300*time.Millisecond)
	interrupted := b.Pose()

	done := false
	b.Hide(func() { done = true })
	if !posesClose(b.Pose(), interrupted) {
		t.Errorf("hide should start from the interrupted pose")
	}
	run(b, clock, 400*time.Millisecond)
	if !done || b.State() != overlay.Hidden {
		t.Errorf("hide after interrupted show: done %v state %v", done, b.State())
	}
}

func TestBorder_HideWhileHidingIgnored(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()
	run(b, clock, time.Second)

	first, second := 0, 0
	b.Hide(func() { first++ })
	run(b, clock, 100*time.Millisecond)
	b.Hide(func() { second++ })
	run(b, clock, 300*time.Millisecond)

	if first != 1 || second != 0 {
		t.Errorf("completions first=%d second=%d, want 1 and 0", first, second)
	}
}

func TestBorder_HideWhileHiddenCompletesImmediately(t *testing.T) {
	b, _ := newBorder(t)
	called := false
	b.Hide(func() { called = true })
	if !called {
		t.Error("Hide on a hidden border should complete at once")
	}
	b.Hide(nil)
	if b.State() != overlay.Hidden {
		t.Errorf("state = %v, want hidden", b.State())
	}

	// The callback runs inside Hide, so a Show from it takes effect at once.
	b.Hide(func() { b.Show() })
	if b.State() != overlay.Showing {
		t.Errorf("state after re-entrant show = %v, want showing", b.State())
	}
}

func TestBorder_ShowFromHideCompletion(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()
	run(b, clock, time.Second)

	b.Hide(func() { b.Show() })
	run(b, clock, 400*time.Millisecond)
	if b.State() != overlay.Showing {
		t.Fatalf("state = %v, want showing", b.State())
	}
	if !posesClose(b.Pose(), overlay.HiddenPose) {
		t.Errorf("pose reset clobbered the new show: %+v", b.Pose())
	}
}

func TestBorder_PauseFreezesTransitionAndSweep(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()
	run(b, clock, 300*time.Millisecond)

	b.Pause()
	pose := b.Pose()
	locations := b.Frame().Locations

	run(b, clock, 5*time.Second)
	if !b.IsPaused() {
		t.Fatal("IsPaused = false")
	}
	if b.Pose() != pose || b.State() != overlay.Showing {
		t.Errorf("pose moved while paused: %+v -> %+v", pose, b.Pose())
	}
	if !reflect.DeepEqual(b.Frame().Locations, locations) {
		t.Error("sweep moved while paused")
	}

	// The platform drops layer animations while backgrounded.
	b.Layer().DetachAll()
	b.Resume()
	if !reflect.DeepEqual(b.Frame().Locations, locations) {
		t.Errorf("sweep not restored where it stopped")
	}

	run(b, clock, 700*time.Millisecond)
	if b.State() != overlay.Shown {
		t.Errorf("show should finish after resume, state %v", b.State())
	}
}

func TestBorder_PausePauseResume(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()
	run(b, clock, time.Second)
	b.Rotate(graphics.RectFromLTWH(0, 0, 844, 390), 56, 300*time.Millisecond, animation.EaseInOut)
	run(b, clock, 100*time.Millisecond)

	b.Pause()
	captured := b.Layer().Persisted().Keys()
	b.Layer().DetachAll()
	b.Pause()
	b.Resume()

	if !reflect.DeepEqual(b.Layer().Keys(), captured) {
		t.Errorf("restored keys %v, want %v", b.Layer().Keys(), captured)
	}
	if want := []string{overlay.BoundsKey, gradient.LocationsKey, overlay.PathKey}; !reflect.DeepEqual(captured, want) {
		t.Errorf("captured %v, want %v", captured, want)
	}
	b.Resume()
	if b.IsPaused() {
		t.Error("second Resume should leave the border running")
	}
}

func TestBorder_ResizeGeometry(t *testing.T) {
	b, _ := newBorder(t)
	bounds := graphics.RectFromLTWH(0, 0, 400, 300)
	b.Resize(bounds, 30)

	m := b.Mask()
	if !m.Frame.Equal(bounds.Inset(2)) {
		t.Errorf("mask frame = %+v, want %+v", m.Frame, bounds.Inset(2))
	}
	if !m.BorderFrame.Equal(bounds.Inset(-2)) {
		t.Errorf("border frame = %+v, want %+v", m.BorderFrame, bounds.Inset(-2))
	}
	want := graphics.RRectFromRectAndRadius(bounds, 30)
	if !m.RRect.Equal(want) {
		t.Errorf("mask outline = %+v, want %+v", m.RRect, want)
	}
	if !reflect.DeepEqual(m.Path, graphics.RoundedRectPath(want)) {
		t.Error("mask path is not the rounded rect of the bounds")
	}
	if b.IsAnimating() {
		t.Error("Resize should not animate")
	}
}

func TestBorder_RotateMorphsPath(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()
	run(b, clock, time.Second)

	oldRing := b.Frame().Ring
	landscape := graphics.RectFromLTWH(0, 0, 844, 390)
	b.Rotate(landscape, 40, 300*time.Millisecond, animation.LinearCurve)

	if !b.Mask().Frame.Equal(landscape.Inset(2)) {
		t.Errorf("mask frame should update at once, got %+v", b.Mask().Frame)
	}
	f := b.Frame()
	if !f.Ring.Equal(oldRing) {
		t.Errorf("ring should start at the old outline, got %+v", f.Ring)
	}

	run(b, clock, 150*time.Millisecond)
	mid := b.Frame()
	if w := mid.Ring.Rect.Width(); w <= 390 || w >= 844 {
		t.Errorf("mid-rotation ring width = %v, want between 390 and 844", w)
	}
	if r := mid.Ring.Radius; math.Abs(r-48) > 1e-6 {
		t.Errorf("mid-rotation radius = %v, want 48", r)
	}

	run(b, clock, 160*time.Millisecond)
	end := b.Frame()
	if !end.Ring.Equal(graphics.RRectFromRectAndRadius(landscape, 40)) {
		t.Errorf("final ring = %+v", end.Ring)
	}
	if !end.BorderFrame.Equal(landscape.Inset(-2)) {
		t.Errorf("final border frame = %+v", end.BorderFrame)
	}
	if b.IsAnimating() {
		t.Error("rotation animations should be gone once finished")
	}
}

type recordingHandler struct {
	errs []*errors.BorderError
}

func (h *recordingHandler) HandleError(err *errors.BorderError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(*errors.PanicError)      {}

func TestBorder_RotateDuringTransitionReports(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	b, clock := newBorder(t)
	b.Show()
	run(b, clock, 100*time.Millisecond)
	b.Rotate(graphics.RectFromLTWH(0, 0, 844, 390), 56, 300*time.Millisecond, nil)

	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindState || !strings.Contains(h.errs[0].Err.Error(), "showing") {
		t.Fatalf("reported %v, want one state error", h.errs)
	}
	if !b.Mask().Frame.Equal(graphics.RectFromLTWH(0, 0, 844, 390).Inset(2)) {
		t.Error("rotation should still proceed")
	}
}

func TestBorder_HideResetsRotationGeometry(t *testing.T) {
	b, clock := newBorder(t)
	b.Show()
	run(b, clock, time.Second)
	b.Rotate(graphics.RectFromLTWH(0, 0, 844, 390), 56, time.Second, nil)
	b.Hide(nil)
	run(b, clock, 400*time.Millisecond)

	if _, ok := b.Layer().Animation(overlay.PathKey); ok {
		t.Error("completed hide should drop the path morph")
	}
	if !b.Frame().Ring.Equal(b.Mask().RRect) {
		t.Error("ring should be back at the model outline")
	}
}

func TestBorder_SetCornerRadius(t *testing.T) {
	b, _ := newBorder(t)
	b.SetCornerRadius(12)
	if b.CornerRadius() != 12 || b.Mask().RRect.Radius != 12 {
		t.Errorf("radius = %v / %v, want 12", b.CornerRadius(), b.Mask().RRect.Radius)
	}
}

func TestBorder_ConfigureReplacesSweep(t *testing.T) {
	b, clock := newBorder(t)
	run(b, clock, 2*time.Second)

	opts := sweepOptions()
	opts.Gradation = 3
	b.Configure(opts)

	if b.Schedule().Len() != 15 {
		t.Errorf("schedule length = %d, want 15", b.Schedule().Len())
	}
	if !reflect.DeepEqual(b.Frame().Locations, b.Schedule().StartLocations()) {
		t.Error("a new sweep should begin at its first frame")
	}
	if b.Options().Gradation != 3 {
		t.Errorf("Options().Gradation = %d", b.Options().Gradation)
	}
}

func TestBorder_ReduceMotion(t *testing.T) {
	b, clock := newBorder(t)
	opts := sweepOptions()
	opts.ReduceMotion = true
	b.Configure(opts)

	if b.Descriptor() != nil {
		t.Fatal("reduced motion should not produce a descriptor")
	}
	if _, ok := b.Layer().Animation(gradient.LocationsKey); ok {
		t.Error("reduced motion should detach the sweep")
	}
	first := b.Frame().Locations
	run(b, clock, 3*time.Second)
	if !reflect.DeepEqual(b.Frame().Locations, first) {
		t.Error("static frame moved")
	}
}

func TestBorder_ConfigureInvalidPanics(t *testing.T) {
	b, _ := newBorder(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for gradation above palette length")
		}
	}()
	opts := sweepOptions()
	opts.Gradation = 9
	b.Configure(opts)
}

func TestParseState(t *testing.T) {
	for _, s := range []overlay.State{overlay.Hidden, overlay.Showing, overlay.Shown, overlay.Hiding} {
		got, err := overlay.ParseState(s.String())
		if err != nil || got != s {
			t.Errorf("ParseState(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := overlay.ParseState("gone"); err == nil {
		t.Error("ParseState(gone) should fail")
	}
}

func scriptedRun(t *testing.T) *drifttest.Snapshot {
	b, clock := newBorder(t)
	snap := drifttest.NewSnapshot()
	record := func(label string) {
		f := b.Frame()
		snap.Record(label, struct {
			State     overlay.State
			Pose      overlay.Pose
			Ring      graphics.RRect
			Locations []float64
		}{f.State, f.Pose, f.Ring, f.Locations})
	}

	b.Show()
	run(b, clock, 250*time.Millisecond)
	record("showing")
	b.Hide(nil)
	run(b, clock, 100*time.Millisecond)
	record("hiding")
	b.Show()
	run(b, clock, time.Second)
	record("shown")
	b.Rotate(graphics.RectFromLTWH(0, 0, 844, 390), 40, 300*time.Millisecond, animation.EaseInOut)
	run(b, clock, 120*time.Millisecond)
	record("rotating")
	return snap
}

func TestBorder_DeterministicReplay(t *testing.T) {
	first := scriptedRun(t)
	second := scriptedRun(t)
	if diff := first.Diff(second); diff != "" {
		t.Errorf("identical scripts produced different frames:\n%s", diff)
	}
	if len(first.Entries) != 4 {
		t.Errorf("recorded %d frames, want 4", len(first.Entries))
	}
}

func TestBorder_OverdampedShowArrivesSmoothly(t *testing.T) {
	metrics := overlay.DefaultMetrics()
	metrics.ShowDamping = 3
	clock := drifttest.NewFakeClock()
	b := overlay.New(screen, metrics, overlay.WithClock(clock))
	b.Configure(sweepOptions())

	b.Show()
	run(b, clock, metrics.ShowDuration*99/100)
	if op := b.Pose().Opacity; op < 0.99 {
		t.Errorf("opacity one frame before the end = %v, want >= 0.99", op)
	}
	run(b, clock, metrics.ShowDuration/100)
	if b.State() != overlay.Shown || b.Pose() != overlay.ShownPose {
		t.Errorf("state %v pose %+v, want shown", b.State(), b.Pose())
	}
}
