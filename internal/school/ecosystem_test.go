package school

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/talgya/greenhouse/internal/actors"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func defaultEco(rng *rand.Rand) *Ecosystem {
	return New("TestSchool", DefaultConstraints(), DefaultCoefficients(), DefaultState(), rng)
}

func addDemoStaff(e *Ecosystem) {
	specs := []struct {
		name  string
		adapt float64
	}{
		{"LegacyA", 0.3},
		{"LegacyB", 0.4},
		{"HighAdaptA", 0.9},
		{"HighAdaptB", 0.75},
	}
	for _, s := range specs {
		e.AddActor(&actors.Actor{
			Name:              s.name,
			Role:              actors.RoleTeacher,
			OSVersion:         "AnyOS",
			Adaptability:      s.adapt,
			Attitude:          actors.AttitudeNeutral,
			OpportunityChoice: actors.ChoiceNone,
		})
	}
}

func TestSimulateYearCountsYears(t *testing.T) {
	e := defaultEco(rand.New(rand.NewSource(1)))
	for i := 0; i < 3; i++ {
		e.SimulateYear()
	}
	if e.YearsSimulated != 3 {
		t.Errorf("YearsSimulated = %d, want 3", e.YearsSimulated)
	}
}

// With randomness zeroed the engine consumes no draws at all, so the
// trajectory cannot depend on the seed.
func TestZeroRandomnessIsSeedIndependent(t *testing.T) {
	stateA := DefaultState()
	stateA.Randomness = 0
	stateB := DefaultState()
	stateB.Randomness = 0

	a := New("A", DefaultConstraints(), DefaultCoefficients(), stateA, rand.New(rand.NewSource(1)))
	b := New("B", DefaultConstraints(), DefaultCoefficients(), stateB, rand.New(rand.NewSource(999)))
	addDemoStaff(a)
	addDemoStaff(b)

	for i := 0; i < 10; i++ {
		a.SimulateYear()
		b.SimulateYear()
	}

	for _, name := range MetricNames() {
		fn, _ := Metric(name)
		if va, vb := fn(a), fn(b); va != vb {
			t.Errorf("metric %s differs across seeds at randomness 0: %v vs %v", name, va, vb)
		}
	}
}

func TestSameSeedSameTrajectory(t *testing.T) {
	a := defaultEco(rand.New(rand.NewSource(42)))
	b := defaultEco(rand.New(rand.NewSource(42)))
	addDemoStaff(a)
	addDemoStaff(b)

	for i := 0; i < 10; i++ {
		a.SimulateYear()
		b.SimulateYear()
	}

	for _, name := range MetricNames() {
		fn, _ := Metric(name)
		if va, vb := fn(a), fn(b); va != vb {
			t.Errorf("metric %s differs across identical seeds: %v vs %v", name, va, vb)
		}
	}
}

// unboundedMetrics are counters and cumulative sums; everything else must
// hold [0,1] no matter how long the run or how loud the noise.
var unboundedMetrics = map[string]bool{
	"years_simulated":           true,
	"rhetorical_change_slogans": true,
	"systemic_opportunity_cost": true,
	"change_seeds_planted":      true,
	"change_seeds_suppressed":   true,
	"external_spend":            true,
}

func TestBoundedMetricsStayBounded(t *testing.T) {
	state := DefaultState()
	state.Randomness = 1.0
	e := New("Noisy", DefaultConstraints(), DefaultCoefficients(), state, rand.New(rand.NewSource(7)))
	addDemoStaff(e)

	for i := 0; i < 10000; i++ {
		e.SimulateYear()
		for _, name := range MetricNames() {
			fn, _ := Metric(name)
			v := fn(e)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("year %d: metric %s = %v", i+1, name, v)
			}
			if unboundedMetrics[name] {
				if v < 0 {
					t.Fatalf("year %d: metric %s = %v, want >= 0", i+1, name, v)
				}
				continue
			}
			if v < 0 || v > 1 {
				t.Fatalf("year %d: metric %s = %v, want within [0,1]", i+1, name, v)
			}
		}
	}
}

func TestMetricRegistry(t *testing.T) {
	names := MetricNames()
	if len(names) != 38 {
		t.Errorf("MetricNames() returned %d names, want 38", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("MetricNames() not sorted")
	}

	e := defaultEco(rand.New(rand.NewSource(1)))
	for _, name := range names {
		fn, ok := Metric(name)
		if !ok {
			t.Errorf("Metric(%q) not found", name)
			continue
		}
		if v := fn(e); math.IsNaN(v) {
			t.Errorf("Metric(%q) = NaN on a fresh ecosystem", name)
		}
	}

	if _, ok := Metric("no_such_metric"); ok {
		t.Error("Metric(\"no_such_metric\") resolved, want miss")
	}
}

func TestNoiseRespectsKnobs(t *testing.T) {
	e := defaultEco(rand.New(rand.NewSource(1)))

	e.Randomness = 0
	if got := e.noise(0.05); got != 0 {
		t.Errorf("noise() at randomness 0 = %v, want 0", got)
	}
	e.Randomness = 1
	if got := e.noise(0); got != 0 {
		t.Errorf("noise() at scale 0 = %v, want 0", got)
	}

	for i := 0; i < 100; i++ {
		v := e.noise(0.05)
		if v < -0.05 || v > 0.05 {
			t.Fatalf("noise(0.05) = %v, want within [-0.05, 0.05]", v)
		}
	}
}
