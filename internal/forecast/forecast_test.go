package forecast

import (
	"math"
	"math/rand"
	"testing"

	"github.com/talgya/greenhouse/internal/actors"
	"github.com/talgya/greenhouse/internal/outside"
	"github.com/talgya/greenhouse/internal/school"
)

func ecoWith(suppression, dxClarity, learnEff, access float64) *school.Ecosystem {
	state := school.DefaultState()
	state.Change.Suppression = suppression
	state.Infra.DXClarity = dxClarity
	state.Education.LearningEfficiency = learnEff
	state.Innovation.Accessibility = access
	return school.New("F", school.DefaultConstraints(), school.DefaultCoefficients(), state, rand.New(rand.NewSource(1)))
}

func student(adapt float64) *actors.Actor {
	return &actors.Actor{
		Name:         "S",
		Role:         actors.RoleStudent,
		OSVersion:    "StudentOS-1.0",
		Adaptability: adapt,
		Attitude:     actors.AttitudeNeutral,
	}
}

func TestFutureHopeProbabilityBounds(t *testing.T) {
	w := outside.NewWorld(0.8, 0.9, nil)

	worst := FutureHopeProbability(ecoWith(1, 0, 0, 0), w, student(0))
	if worst <= 0 || worst >= 0.05 {
		t.Errorf("worst-case probability = %v, want a small non-zero floor", worst)
	}

	best := FutureHopeProbability(ecoWith(0, 1, 1, 1), w, student(1))
	if best <= 0.5 || best >= 1 {
		t.Errorf("best-case probability = %v, want high but short of certainty", best)
	}
}

func TestFutureHopeProbabilityExact(t *testing.T) {
	w := outside.NewWorld(0.8, 0.9, nil)
	s := student(0.5)
	e := ecoWith(0.8, 0.1, 0.4, 0.0)

	env := ((1.0 - 0.8) + 0.1 + 0.4 + 0.0) / 4.0
	delta := 0.5 - w.RequiredThreshold()
	want := 1.0 / (1.0 + math.Exp(-(-2.5 + 3.0*env + 5.0*delta)))

	if got := FutureHopeProbability(e, w, s); math.Abs(got-want) > 1e-12 {
		t.Errorf("FutureHopeProbability() = %v, want %v", got, want)
	}
}

func TestFutureHopeMonotoneInAdaptability(t *testing.T) {
	w := outside.NewWorld(0.8, 0.9, nil)
	e := ecoWith(0.8, 0.1, 0.4, 0.0)

	prev := -1.0
	for _, adapt := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		p := FutureHopeProbability(e, w, student(adapt))
		if p <= prev {
			t.Fatalf("probability at adaptability %v = %v, want above %v", adapt, p, prev)
		}
		prev = p
	}
}

func TestFutureHopeMonotoneInEnvironment(t *testing.T) {
	w := outside.NewWorld(0.8, 0.9, nil)
	s := student(0.5)

	hostile := FutureHopeProbability(ecoWith(0.9, 0.1, 0.2, 0.0), w, s)
	helpful := FutureHopeProbability(ecoWith(0.2, 0.7, 0.7, 0.5), w, s)
	if helpful <= hostile {
		t.Errorf("helpful environment probability %v not above hostile %v", helpful, hostile)
	}
}

func TestFutureHopeIsPure(t *testing.T) {
	w := outside.NewWorld(0.8, 0.9, nil)
	e := ecoWith(0.8, 0.1, 0.4, 0.0)
	s := student(0.6)

	first := FutureHopeProbability(e, w, s)
	second := FutureHopeProbability(e, w, s)
	if first != second {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
	if s.FutureHopeProbability != 0 || s.IsFutureHope {
		t.Error("the estimate wrote into the actor; callers own that decision")
	}
}
