package testing

import (
	"sync"
	"time"
)

// DefaultFrame is the frame step used when a zero step is passed to
// [FakeClock.Run], [FakeClock.Step] or [FakeClock.RunWhile].
const DefaultFrame = 10 * time.Millisecond

// FakeClock is an animation clock that only moves when a test moves it.
// Run, Step and RunWhile move it the way a display link does: one frame of
// time, then a tick of whatever the clock drives.
//
// Now, Advance, Elapsed and Frames are safe for concurrent use. The frame
// helpers call tick without holding the lock.
type FakeClock struct {
	mu     sync.Mutex
	epoch  time.Time
	now    time.Time
	frames int
}

// NewFakeClock returns a FakeClock at a fixed epoch.
func NewFakeClock() *FakeClock {
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &FakeClock{epoch: epoch, now: epoch}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d without counting a frame.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Elapsed returns the time since the epoch.
func (c *FakeClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(c.epoch)
}

// Frames returns the number of frames the helpers have stepped.
func (c *FakeClock) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

func (c *FakeClock) frame(dt time.Duration, tick func()) {
	c.mu.Lock()
	c.now = c.now.Add(dt)
	c.frames++
	c.mu.Unlock()
	if tick != nil {
		tick()
	}
}

// Step advances n frames of dt, calling tick after each.
func (c *FakeClock) Step(n int, dt time.Duration, tick func()) {
	if dt <= 0 {
		dt = DefaultFrame
	}
	for range n {
		c.frame(dt, tick)
	}
}

// Run advances by d in frames of at most dt, calling tick after each. The
// last frame is shortened so the clock lands exactly d later.
func (c *FakeClock) Run(d, dt time.Duration, tick func()) {
	if dt <= 0 {
		dt = DefaultFrame
	}
	for d > 0 {
		step := min(dt, d)
		c.frame(step, tick)
		d -= step
	}
}

// RunWhile steps frames of dt while busy reports true, up to limit frames.
// It returns the number of frames stepped.
func (c *FakeClock) RunWhile(dt time.Duration, limit int, busy func() bool, tick func()) int {
	if dt <= 0 {
		dt = DefaultFrame
	}
	n := 0
	for ; n < limit && busy(); n++ {
		c.frame(dt, tick)
	}
	return n
}
