// Package forecast estimates student trajectories: the probability that a
// student thrives as the outside world shifts, given who they are and how
// healthy the system around them is.
package forecast

import (
	"math"

	"github.com/talgya/greenhouse/internal/actors"
	"github.com/talgya/greenhouse/internal/outside"
	"github.com/talgya/greenhouse/internal/school"
)

// Logistic curve parameters. The baseline maps a hostile environment to a
// few percent and a healthy one to several tens of percent; the delta gain
// makes a 0.2 adaptability edge count for a lot.
const (
	baselineIntercept = -2.5
	envGain           = 3.0
	deltaGain         = 5.0
)

// FutureHopeProbability returns the probability that the student can thrive
// as the outside world shifts. Pure: no randomness, no mutation.
//
// Two terms feed one logistic. The individual term is the student's
// effective adaptability minus the outside threshold; the environment term
// averages how much the school currently helps (openness, roadmap clarity,
// learning efficiency, AI access). The curve keeps a non-zero floor even
// when both terms are bad and stays short of certainty when both are good.
func FutureHopeProbability(e *school.Ecosystem, w *outside.World, a *actors.Actor) float64 {
	delta := w.BaseEffectiveAdaptability(a) - w.RequiredThreshold()

	env := (1.0 - e.Change.Suppression) +
		e.Infra.DXClarity +
		e.Education.LearningEfficiency +
		e.Innovation.Accessibility
	env /= 4.0
	if env < 0 {
		env = 0
	}
	if env > 1 {
		env = 1
	}

	logit := baselineIntercept + envGain*env + deltaGain*delta
	p := 1.0 / (1.0 + math.Exp(-logit))
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}
