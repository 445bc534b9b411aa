package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// springSamples is the resolution of the precomputed spring response.
const springSamples = 256

// springSettle is the fraction of the initial displacement still allowed
// when the normalized duration ends.
const springSettle = 0.001

// SpringCurve returns a curve that follows a damped spring released from 0
// toward 1, compressed so it settles within the normalized duration. It is
// the timing used for duration-plus-damping-ratio transitions: a ratio of 1
// settles without overshoot, lower ratios bounce past 1 before coming to rest.
//
// The response is simulated once with harmonica and sampled by linear
// interpolation; the curve always returns exactly 0 at t=0 and 1 at t=1.
func SpringCurve(dampingRatio float64) func(float64) float64 {
	if dampingRatio <= 0 {
		dampingRatio = 0.01
	}
	omega := -math.Log(springSettle) / springDecayRate(dampingRatio)
	table := springResponse(omega, dampingRatio)
	// Overdamped and critical responses carry a coefficient above 1 on their
	// slow mode, so stiffen until the last sample is within springSettle.
	for range 32 {
		if dampingRatio < 1 || 1-table[springSamples] <= springSettle {
			break
		}
		omega *= 1.1
		table = springResponse(omega, dampingRatio)
	}
	table[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSamples
		i := int(x)
		frac := x - float64(i)
		return table[i] + (table[i+1]-table[i])*frac
	}
}

// springDecayRate is the decay rate of the slowest mode per unit of angular
// frequency: ζ while underdamped, ζ-√(ζ²-1) once the poles are real.
func springDecayRate(dampingRatio float64) float64 {
	if dampingRatio < 1 {
		return dampingRatio
	}
	return dampingRatio - math.Sqrt(dampingRatio*dampingRatio-1)
}

func springResponse(omega, dampingRatio float64) []float64 {
	spring := harmonica.NewSpring(1.0/springSamples, omega, dampingRatio)
	table := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		table[i] = pos
	}
	return table
}
