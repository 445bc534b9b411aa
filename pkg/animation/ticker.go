// Package animation provides the timing primitives behind the border
// overlay's show and hide transitions.
//
// # Core Components
//
//   - [Scheduler]: owns a set of active [Ticker]s and advances them once per
//     host frame from a [Clock]. Nothing runs on a background goroutine; the
//     host calls [Scheduler.Step] from its frame loop.
//
//   - [AnimationController]: drives a value to 1 over a Duration, shaped by
//     a Curve. Stopping a controller freezes it at its current interpolated
//     value, which is how an in-flight transition is interrupted without
//     snapping.
//
//   - Curves: [LinearCurve], [EaseIn], [EaseOut], [EaseInOut], [CubicBezier]
//     and the damped [SpringCurve].
//
//   - [Tween]: maps the controller's progress onto any value type.
//
// # Basic Usage
//
//	sched := animation.NewScheduler(clock)
//	c := sched.NewController(400 * time.Millisecond)
//	c.Curve = animation.EaseOut
//	c.AddListener(func() { opacity = fade.Transform(c) })
//	c.Forward()
//
//	// every frame
//	sched.Step()
package animation

import (
	"sync"
	"time"
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called, measured on
// the owning scheduler's clock.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.clock.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.clock.Now().Sub(t.start)
}

// TickerProvider creates tickers.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// Scheduler advances a group of tickers from a single clock.
type Scheduler struct {
	clock  Clock
	mu     sync.Mutex
	active map[*Ticker]struct{}
}

// NewScheduler returns a scheduler reading time from c. A nil clock uses
// [DefaultClock].
func NewScheduler(c Clock) *Scheduler {
	if c == nil {
		c = DefaultClock()
	}
	return &Scheduler{
		clock:  c,
		active: make(map[*Ticker]struct{}),
	}
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// CreateTicker implements [TickerProvider].
func (s *Scheduler) CreateTicker(callback func(time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.active[t] = struct{}{}
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	delete(s.active, t)
	s.mu.Unlock()
}

// Step advances all active tickers.
// This should be called once per frame from the host.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(s.active))
	for ticker := range s.active {
		tickers = append(tickers, ticker)
	}
	s.mu.Unlock()

	now := s.clock.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

var defaultScheduler = NewScheduler(nil)

// NewTicker creates a ticker on the default scheduler.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return defaultScheduler.CreateTicker(callback)
}

// StepTickers advances all tickers on the default scheduler.
func StepTickers() {
	defaultScheduler.Step()
}

// HasActiveTickers returns true if any default-scheduler tickers are active.
func HasActiveTickers() bool {
	return defaultScheduler.HasActiveTickers()
}
