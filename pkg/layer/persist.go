package layer

import (
	"maps"
	"slices"
)

// PersistedAnimationSet maps animation keys to snapshots taken at pause time.
// It is empty whenever its layer is running.
type PersistedAnimationSet struct {
	anims map[string]Animation
}

// Capture copies every animation attached to l into the set. Keys already
// captured but no longer attached are kept.
func (s *PersistedAnimationSet) Capture(l *Layer) {
	if s.anims == nil {
		s.anims = make(map[string]Animation, len(l.anims))
	}
	for key, a := range l.anims {
		s.anims[key] = a.clone()
	}
}

// Restore reattaches every snapshot to l, replacing by key, then empties the
// set. Snapshots keep their begin time so they continue from where the
// clock stopped.
func (s *PersistedAnimationSet) Restore(l *Layer) {
	for _, a := range s.anims {
		l.attach(a)
	}
	clear(s.anims)
}

// Len returns the number of captured animations.
func (s *PersistedAnimationSet) Len() int {
	return len(s.anims)
}

// Keys returns the captured keys in sorted order.
func (s *PersistedAnimationSet) Keys() []string {
	return slices.Sorted(maps.Keys(s.anims))
}

// Animation returns a copy of the snapshot under key.
func (s *PersistedAnimationSet) Animation(key string) (Animation, bool) {
	a, ok := s.anims[key]
	if !ok {
		return Animation{}, false
	}
	return a.clone(), true
}

func (s *PersistedAnimationSet) remove(key string) {
	delete(s.anims, key)
}
