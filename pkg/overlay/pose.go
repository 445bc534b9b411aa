package overlay

import (
	"fmt"
	"time"

	"github.com/go-drift/border/pkg/animation"
	"github.com/go-drift/border/pkg/graphics"
)

// State is the transition state of the overlay.
//
//	Hidden ──Show──► Showing ──done──► Shown
//	  ▲                 ▲  │             │
//	  │                 │ Hide          Hide
//	  │                Show │            │
//	  │                 │  ▼             ▼
//	  └──────done────── Hiding ◄─────────┘
type State int

const (
	Hidden State = iota
	Showing
	Shown
	Hiding
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Showing:
		return "showing"
	case Shown:
		return "shown"
	case Hiding:
		return "hiding"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState accepts the lowercase names returned by String.
func ParseState(s string) (State, error) {
	for st := Hidden; st <= Hiding; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown overlay state %q", s)
}

// Pose is the visual transform of the whole overlay.
type Pose struct {
	Transform graphics.Transform
	Opacity   float64
}

// ShownPose is the resting pose of a visible overlay.
var ShownPose = Pose{Transform: graphics.Identity(), Opacity: 1}

// HiddenPose is slightly enlarged so the border starts and ends offscreen,
// and only partly transparent since the scale already hides most of it.
var HiddenPose = Pose{Transform: graphics.Scale(1.03, 1.02), Opacity: 0.2}

// IsIdentity reports whether p draws the overlay untransformed and opaque.
func (p Pose) IsIdentity() bool {
	return p.Transform.IsIdentity() && p.Opacity == 1
}

// LerpPose interpolates between poses. t may overshoot [0, 1] for spring
// curves; opacity is clamped.
func LerpPose(a, b Pose, t float64) Pose {
	return Pose{
		Transform: graphics.LerpTransform(a.Transform, b.Transform, t),
		Opacity:   min(max(a.Opacity+(b.Opacity-a.Opacity)*t, 0), 1),
	}
}

// Metrics are the host-supplied constants of the overlay.
type Metrics struct {
	// BorderWidth is the stroke width of the ring.
	BorderWidth float64
	// AntiAliasInset pushes the border view slightly offscreen so the
	// rounded corners do not show jagged edges.
	AntiAliasInset float64
	CornerRadius   float64

	ShowDuration time.Duration
	ShowDamping  float64
	HideDuration time.Duration
	HideCurve    func(float64) float64
}

// DefaultMetrics returns the stock overlay constants.
func DefaultMetrics() Metrics {
	return Metrics{
		BorderWidth:    20,
		AntiAliasInset: 2,
		CornerRadius:   56,
		ShowDuration:   time.Second,
		ShowDamping:    0.55,
		HideDuration:   400 * time.Millisecond,
		HideCurve:      animation.EaseOut,
	}
}
