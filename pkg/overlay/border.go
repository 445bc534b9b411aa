// Package overlay implements the animated border overlay: a gradient sweep
// masked to a rounded ring around the host surface, shown and hidden with
// interruptible transitions.
//
// [Border] is a single-threaded state machine. The host calls its methods
// from one goroutine, calls [Border.Tick] once per frame, and draws
// [Border.Frame]. Nothing blocks and nothing runs in the background.
//
// Show and hide interrupt each other at the current interpolated pose:
//
//	b.Hide(func() { log.Print("hidden") })
//	// a few frames later, before the hide finishes
//	b.Show() // reverses from where the hide got to; the callback never runs
package overlay

import (
	"time"

	"github.com/go-drift/border/pkg/animation"
	"github.com/go-drift/border/pkg/errors"
	"github.com/go-drift/border/pkg/gradient"
	"github.com/go-drift/border/pkg/graphics"
	"github.com/go-drift/border/pkg/layer"
)

// Layer keys of the geometry animations started by Rotate.
const (
	PathKey   = "path"
	BoundsKey = "bounds"
)

// Border owns the overlay's transition state, gradient schedule and mask
// geometry.
type Border struct {
	metrics Metrics
	bounds  graphics.Rect
	radius  float64

	layer *layer.Layer
	sched *animation.Scheduler

	state    State
	pose     Pose
	showCtl  *animation.AnimationController
	hideCtl  *animation.AnimationController
	hideDone func()

	mask MaskGeometry

	options  gradient.Options
	schedule gradient.StopSchedule
	desc     *gradient.AnimationDescriptor
}

// Option configures a Border.
type Option func(*borderConfig)

type borderConfig struct {
	clock animation.Clock
}

// WithClock drives the border from c instead of the animation package clock.
func WithClock(c animation.Clock) Option {
	return func(cfg *borderConfig) { cfg.clock = c }
}

// New returns a hidden border covering bounds. Call Configure before the
// first frame to give it a gradient.
func New(bounds graphics.Rect, metrics Metrics, opts ...Option) *Border {
	var cfg borderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	l := layer.New(cfg.clock)
	b := &Border{
		metrics: metrics,
		bounds:  bounds,
		radius:  metrics.CornerRadius,
		layer:   l,
		sched:   animation.NewScheduler(l),
		state:   Hidden,
		pose:    ShownPose,
	}
	b.mask = ComputeMask(bounds, b.radius, metrics.AntiAliasInset)
	return b
}

// Configure rebuilds the gradient schedule and replaces the running sweep.
// It panics with a *errors.ConfigError if opts is invalid.
func (b *Border) Configure(opts gradient.Options) {
	schedule, desc := gradient.Compute(opts)
	b.options = opts
	b.schedule = schedule
	b.desc = desc

	b.layer.Remove(gradient.LocationsKey)
	if desc == nil {
		return
	}
	b.layer.Add(gradient.LocationsKey, layer.Animation{
		From:                desc.From,
		To:                  desc.To,
		Duration:            desc.Duration,
		RepeatForever:       desc.RepeatForever,
		RemovedOnCompletion: desc.RemovedOnCompletion,
	})
}

// Show animates the overlay in with a damped spring. An in-flight hide is
// stopped where it is and its completion is dropped. Showing or shown
// overlays are left alone.
func (b *Border) Show() {
	switch b.state {
	case Showing, Shown:
		return
	case Hiding:
		b.stopHide()
	default:
		// Cold start: begin from the enlarged, faded pose.
		b.pose = HiddenPose
	}

	tw := &animation.Tween[Pose]{Begin: b.pose, End: ShownPose, Lerp: LerpPose}
	c := b.sched.NewController(b.metrics.ShowDuration)
	c.Curve = animation.SpringCurve(b.metrics.ShowDamping)
	c.AddListener(func() {
		b.pose = tw.Transform(c)
	})
	c.AddStatusListener(func(s animation.AnimationStatus) {
		if s == animation.AnimationCompleted && b.showCtl == c {
			b.state = Shown
			b.pose = ShownPose
		}
	})
	b.showCtl = c
	b.state = Showing
	c.Forward()
}

// Hide animates the overlay out with an ease-out curve. onComplete runs only
// if the hide finishes; a Show before then cancels it. An in-flight show is
// stopped where it is. A second Hide while hiding is ignored.
//
// Hiding an already hidden overlay calls onComplete synchronously, before
// Hide returns, so onComplete must not assume the caller has finished.
func (b *Border) Hide(onComplete func()) {
	switch b.state {
	case Hiding:
		return
	case Hidden:
		if onComplete != nil {
			onComplete()
		}
		return
	case Showing:
		b.stopShow()
	}

	tw := &animation.Tween[Pose]{Begin: b.pose, End: HiddenPose, Lerp: LerpPose}
	c := b.sched.NewController(b.metrics.HideDuration)
	if b.metrics.HideCurve != nil {
		c.Curve = b.metrics.HideCurve
	}
	c.AddListener(func() {
		b.pose = tw.Transform(c)
	})
	c.AddStatusListener(func(s animation.AnimationStatus) {
		if s == animation.AnimationCompleted && b.hideCtl == c {
			b.finishHide()
		}
	})
	b.hideCtl = c
	b.hideDone = onComplete
	b.state = Hiding
	c.Forward()
}

func (b *Border) stopShow() {
	if b.showCtl == nil {
		return
	}
	b.showCtl.Dispose()
	b.showCtl = nil
}

func (b *Border) stopHide() {
	b.hideDone = nil
	if b.hideCtl == nil {
		return
	}
	b.hideCtl.Dispose()
	b.hideCtl = nil
}

func (b *Border) finishHide() {
	b.state = Hidden
	b.hideCtl = nil
	done := b.hideDone
	b.hideDone = nil
	if done != nil {
		done()
	}
	// The callback may have shown the border again.
	if b.state != Hidden {
		return
	}
	// Rotation math assumes an untransformed view with default geometry.
	b.pose = ShownPose
	b.resetMask()
}

func (b *Border) resetMask() {
	b.layer.Remove(PathKey)
	b.layer.Remove(BoundsKey)
	b.mask = ComputeMask(b.bounds, b.radius, b.metrics.AntiAliasInset)
}

// Pause captures the running animations and freezes the overlay clock,
// including any show or hide in flight.
func (b *Border) Pause() {
	b.layer.Pause()
}

// Resume reattaches the animations captured by Pause and restarts the clock.
func (b *Border) Resume() {
	b.layer.Resume()
}

// IsPaused reports whether the overlay clock is frozen.
func (b *Border) IsPaused() bool {
	return b.layer.IsPaused()
}

// Resize moves the overlay to bounds with the given corner radius at once.
func (b *Border) Resize(bounds graphics.Rect, cornerRadius float64) {
	b.bounds = bounds
	b.radius = cornerRadius
	b.resetMask()
}

// SetCornerRadius changes the corner radius at once.
func (b *Border) SetCornerRadius(r float64) {
	b.radius = r
	b.resetMask()
}

// CornerRadius returns the model corner radius.
func (b *Border) CornerRadius() float64 {
	return b.radius
}

// Rotate moves the overlay to bounds alongside a host rotation lasting d.
// The mask frame jumps to its new value; the border frame and the ring
// outline morph from their current presentation over d with curve (linear
// if nil), so the corners never snap.
func (b *Border) Rotate(bounds graphics.Rect, cornerRadius float64, d time.Duration, curve func(float64) float64) {
	if !b.pose.IsIdentity() {
		errors.ReportState("overlay.Rotate", "rotating %s border with non-identity pose (scale %.3fx%.3f, opacity %.2f)",
			b.state, b.pose.Transform.ScaleX, b.pose.Transform.ScaleY, b.pose.Opacity)
	}

	fromFrame := b.presentationBorderFrame()
	fromRRect := b.presentationRRect()

	b.bounds = bounds
	b.radius = cornerRadius
	next := ComputeMask(bounds, cornerRadius, b.metrics.AntiAliasInset)
	b.mask = next

	b.layer.Add(BoundsKey, layer.Animation{
		From:                rectValues(fromFrame),
		To:                  rectValues(next.BorderFrame),
		Duration:            d,
		Curve:               curve,
		RemovedOnCompletion: true,
	})
	b.layer.Add(PathKey, layer.Animation{
		From:                rrectValues(fromRRect),
		To:                  rrectValues(next.RRect),
		Duration:            d,
		Curve:               curve,
		RemovedOnCompletion: true,
	})
}

// Tick advances the show and hide transitions to the current time and drops
// finished geometry animations. Call it once per frame.
func (b *Border) Tick() {
	b.sched.Step()
	b.layer.Prune()
}

// IsAnimating reports whether a transition or geometry morph is running.
func (b *Border) IsAnimating() bool {
	return b.sched.HasActiveTickers() || b.hasAnimation(PathKey) || b.hasAnimation(BoundsKey)
}

func (b *Border) hasAnimation(key string) bool {
	_, ok := b.layer.Value(key)
	return ok
}

// State returns the transition state.
func (b *Border) State() State {
	return b.state
}

// Pose returns the current pose.
func (b *Border) Pose() Pose {
	return b.pose
}

// Bounds returns the surface the overlay covers.
func (b *Border) Bounds() graphics.Rect {
	return b.bounds
}

// Metrics returns the overlay constants.
func (b *Border) Metrics() Metrics {
	return b.metrics
}

// Mask returns the model mask geometry, ignoring any morph in progress.
func (b *Border) Mask() MaskGeometry {
	return b.mask
}

// Options returns the options of the last Configure.
func (b *Border) Options() gradient.Options {
	return b.options
}

// Schedule returns the current stop schedule.
func (b *Border) Schedule() gradient.StopSchedule {
	return b.schedule
}

// Descriptor returns the running sweep animation, or nil under reduced
// motion or before Configure.
func (b *Border) Descriptor() *gradient.AnimationDescriptor {
	return b.desc
}

// Layer returns the layer holding the overlay's animations.
func (b *Border) Layer() *layer.Layer {
	return b.layer
}

func (b *Border) presentationBorderFrame() graphics.Rect {
	if v, ok := b.layer.Value(BoundsKey); ok {
		return rectFromValues(v)
	}
	return b.mask.BorderFrame
}

func (b *Border) presentationRRect() graphics.RRect {
	if v, ok := b.layer.Value(PathKey); ok {
		return rrectFromValues(v)
	}
	return b.mask.RRect
}

func (b *Border) locations() []float64 {
	if v, ok := b.layer.Value(gradient.LocationsKey); ok {
		return v
	}
	return b.schedule.StartLocations()
}
