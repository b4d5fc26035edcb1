// Package outside models the world beyond the school walls, where AI and
// macro change set real selection pressure. The world never acts during
// yearly evolution; it is only consulted when someone steps outside, or
// when a report asks how someone would fare if they did.
package outside

import (
	"math/rand"

	"github.com/talgya/greenhouse/internal/actors"
)

// Outcome is the result of a reintegration attempt.
type Outcome string

const (
	OutcomeRebooted Outcome = "rebooted"
	OutcomeCasualty Outcome = "casualty"
)

// World holds the outside selection parameters and the random source for
// reporting-phase draws (reintegration wiggle, trajectory coin flips).
type World struct {
	SelectionPressure float64 // 0..1, high is harsh
	AIShiftSpeed      float64 // 0..1, how fast the paradigm is moving

	rng *rand.Rand
}

// NewWorld creates a world. The random source is shared with the scenario's
// other consumers so one seed fixes an entire run.
func NewWorld(selectionPressure, aiShiftSpeed float64, rng *rand.Rand) *World {
	return &World{
		SelectionPressure: selectionPressure,
		AIShiftSpeed:      aiShiftSpeed,
		rng:               rng,
	}
}

// RequiredThreshold is the effective adaptability needed to make it outside
// once the speed of the AI shift is priced in. Not clamped.
func (w *World) RequiredThreshold() float64 {
	return w.SelectionPressure + 0.1*w.AIShiftSpeed
}

// BaseEffectiveAdaptability scores an actor against outside conditions,
// before any burnout penalty. The result is not clamped; comparisons run
// against the raw value.
func (w *World) BaseEffectiveAdaptability(a *actors.Actor) float64 {
	base := a.Adaptability

	// A legacy mindset is a handicap, not a death sentence.
	if a.Legacy() {
		base -= 0.15
	}
	if a.HighAdaptive() {
		base += 0.15
	}

	switch a.Attitude {
	case actors.AttitudeSupport:
		base += 0.05
	case actors.AttitudeResist:
		base -= 0.05
	}

	return base
}

// Survives reports whether the actor would likely make it outside, ignoring
// burnout. Deterministic; used for the staff survival table.
func (w *World) Survives(a *actors.Actor) bool {
	return w.BaseEffectiveAdaptability(a) >= w.RequiredThreshold()
}

// ReintegrationOutcome resolves what happens to someone who left. Burnout
// carries a penalty, and a small wiggle keeps the result from being pure
// fate. Draws once from the stream; callers gate it so each leaver is
// resolved at most once.
func (w *World) ReintegrationOutcome(a *actors.Actor) Outcome {
	score := w.BaseEffectiveAdaptability(a)
	if a.BurnedOut {
		score -= 0.2
	}
	score += -0.1 + w.rng.Float64()*0.2

	if score >= w.RequiredThreshold() {
		return OutcomeRebooted
	}
	return OutcomeCasualty
}

// Roll returns true with probability p, drawing from the world's stream.
func (w *World) Roll(p float64) bool {
	return w.rng.Float64() < p
}
