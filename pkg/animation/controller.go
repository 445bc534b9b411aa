package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is where a controller's run stands.
//
//	           Forward()              run ends
//	Dismissed ──────────► Forward ──────────► Completed
//	                         │
//	                         │ Stop() / Dispose()
//	                         ▼
//	                      Stopped
//
// Forward may be called again from Stopped or Completed; the new run starts
// at the current value.
type AnimationStatus int

const (
	// AnimationDismissed means the controller has not run yet.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means a run is in flight.
	AnimationForward
	// AnimationCompleted means the last run reached 1.
	AnimationCompleted
	// AnimationStopped means the last run was interrupted at its current value.
	AnimationStopped
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationCompleted:
		return "completed"
	case AnimationStopped:
		return "stopped"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController runs Value from wherever it is to 1 over Duration,
// shaped by Curve. Curves that overshoot (see [SpringCurve]) carry Value past
// 1 during the run; it lands on exactly 1 when the run completes.
//
// A controller belongs to the [Scheduler] that created it and only moves when
// that scheduler steps. Map Value onto other types with a [Tween].
type AnimationController struct {
	// Value is the current progress.
	Value float64
	// Duration is the length of one run.
	Duration time.Duration
	// Curve shapes linear progress. Nil means linear.
	Curve func(float64) float64

	scheduler *Scheduler
	ticker    *Ticker
	status    AnimationStatus
	from      float64

	nextID          int
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
}

// NewAnimationController returns a controller on the default scheduler.
func NewAnimationController(duration time.Duration) *AnimationController {
	return defaultScheduler.NewController(duration)
}

// NewController returns a controller driven by s.
func (s *Scheduler) NewController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		scheduler:       s,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward starts a run from the current value to 1, replacing any run in
// flight.
func (c *AnimationController) Forward() {
	c.release()
	c.from = c.Value
	c.setStatus(AnimationForward)
	c.ticker = c.scheduler.CreateTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	t := 1.0
	if c.Duration > 0 {
		t = min(float64(elapsed)/float64(c.Duration), 1)
	}
	if t >= 1 {
		c.Value = 1
		c.notify()
		c.release()
		c.setStatus(AnimationCompleted)
		return
	}
	shaped := t
	if c.Curve != nil {
		shaped = c.Curve(t)
	}
	c.Value = c.from + (1-c.from)*shaped
	c.notify()
}

// Stop ends a run in flight at the current value. Completion listeners do
// not hear about it.
func (c *AnimationController) Stop() {
	c.release()
	if c.status == AnimationForward {
		c.setStatus(AnimationStopped)
	}
}

func (c *AnimationController) release() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the controller's status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating reports whether a run is in flight.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward
}

// AddListener registers fn to run after every value change. Returns an
// unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// AddStatusListener registers fn to run on every status change. Returns an
// unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextID
	c.nextID++
	c.statusListeners[id] = fn
	return func() { delete(c.statusListeners, id) }
}

func (c *AnimationController) setStatus(s AnimationStatus) {
	if c.status == s {
		return
	}
	c.status = s
	for _, fn := range c.statusListeners {
		fn(s)
	}
}

func (c *AnimationController) notify() {
	for _, fn := range c.listeners {
		fn()
	}
}

// Dispose stops the controller and drops its listeners, so a disposed run
// never reports anything again.
func (c *AnimationController) Dispose() {
	c.listeners = nil
	c.statusListeners = nil
	c.Stop()
}
