// Package layer models a render layer that owns keyed animations and its own
// media clock.
//
// A [Layer] reads time from a parent [animation.Clock] and runs it through a
// speed factor, so setting the speed to zero freezes every animation on the
// layer, including controllers whose scheduler uses the layer as its clock.
// [Layer.Pause] and [Layer.Resume] wrap that with a [PersistedAnimationSet]
// so animations detached while the host is in the background come back on
// resume exactly where they stopped.
package layer

import (
	"maps"
	"slices"
	"time"

	"github.com/go-drift/border/pkg/animation"
)

// Layer holds keyed animations and a local clock. Layer is not safe for
// concurrent use; it is driven from the host's frame loop.
type Layer struct {
	parent animation.Clock
	epoch  time.Time

	speed        float64
	parentAnchor time.Time
	localAnchor  time.Duration

	anims     map[string]Animation
	persisted PersistedAnimationSet
	paused    bool
}

// New returns a running layer whose local time starts at zero. A nil parent
// uses [animation.DefaultClock].
func New(parent animation.Clock) *Layer {
	if parent == nil {
		parent = animation.DefaultClock()
	}
	now := parent.Now()
	return &Layer{
		parent:       parent,
		epoch:        now,
		speed:        1,
		parentAnchor: now,
		anims:        make(map[string]Animation),
	}
}

// LocalTime returns the time elapsed on the layer's clock.
func (l *Layer) LocalTime() time.Duration {
	delta := l.parent.Now().Sub(l.parentAnchor)
	return l.localAnchor + time.Duration(float64(delta)*l.speed)
}

// Now implements [animation.Clock] in layer-local time.
func (l *Layer) Now() time.Time {
	return l.epoch.Add(l.LocalTime())
}

// Speed returns the rate local time advances relative to the parent clock.
func (l *Layer) Speed() float64 {
	return l.speed
}

// SetSpeed changes the clock rate without moving local time.
func (l *Layer) SetSpeed(speed float64) {
	if speed < 0 {
		speed = 0
	}
	l.localAnchor = l.LocalTime()
	l.parentAnchor = l.parent.Now()
	l.speed = speed
}

// Add attaches a under key, replacing any animation with that key. The
// animation begins at the current local time.
func (l *Layer) Add(key string, a Animation) {
	a.Key = key
	a.BeginTime = l.LocalTime()
	l.attach(a)
}

func (l *Layer) attach(a Animation) {
	l.anims[a.Key] = a.clone()
}

// Remove detaches the animation under key, including any copy held for
// resume.
func (l *Layer) Remove(key string) {
	delete(l.anims, key)
	l.persisted.remove(key)
}

// Animation returns a copy of the animation under key.
func (l *Layer) Animation(key string) (Animation, bool) {
	a, ok := l.anims[key]
	if !ok {
		return Animation{}, false
	}
	return a.clone(), true
}

// Keys returns the attached keys in sorted order.
func (l *Layer) Keys() []string {
	return slices.Sorted(maps.Keys(l.anims))
}

// Len returns the number of attached animations.
func (l *Layer) Len() int {
	return len(l.anims)
}

// Value samples the animation under key at the current local time. It
// reports false if nothing is attached or a removable animation has finished.
func (l *Layer) Value(key string) ([]float64, bool) {
	a, ok := l.anims[key]
	if !ok {
		return nil, false
	}
	local := l.LocalTime()
	if a.RemovedOnCompletion && a.Finished(local) {
		return nil, false
	}
	return a.Sample(local), true
}

// Prune detaches finished animations marked RemovedOnCompletion.
func (l *Layer) Prune() {
	local := l.LocalTime()
	for key, a := range l.anims {
		if a.RemovedOnCompletion && a.Finished(local) {
			delete(l.anims, key)
		}
	}
}

// DetachAll drops every attached animation without persisting it, as a
// platform does when the app moves to the background.
func (l *Layer) DetachAll() {
	clear(l.anims)
}

// Pause captures the attached animations and stops the clock. Pausing an
// already paused layer captures again without losing earlier captures.
func (l *Layer) Pause() {
	l.persisted.Capture(l)
	if !l.paused {
		l.SetSpeed(0)
		l.paused = true
	}
}

// Resume reattaches captured animations and restarts the clock. It is a
// no-op on a running layer.
func (l *Layer) Resume() {
	if !l.paused {
		return
	}
	l.persisted.Restore(l)
	l.SetSpeed(1)
	l.paused = false
}

// IsPaused reports whether the layer clock is stopped by Pause.
func (l *Layer) IsPaused() bool {
	return l.paused
}

// Persisted returns the set holding animations captured by Pause.
func (l *Layer) Persisted() *PersistedAnimationSet {
	return &l.persisted
}
