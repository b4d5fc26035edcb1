// Package stakeholder scores ecosystem state through the eyes of different
// constituencies. A utility is a named weighted sum over the closed metric
// registry; the weights say what each group actually optimizes for, which
// is rarely the same thing.
package stakeholder

import (
	"fmt"
	"sort"

	"github.com/talgya/greenhouse/internal/school"
)

// Utility is one stakeholder lens: a display name plus per-metric weights.
type Utility struct {
	Name    string
	Weights map[string]float64
}

// New builds a utility, rejecting any weight that references a metric the
// registry does not know.
func New(name string, weights map[string]float64) (*Utility, error) {
	for metric := range weights {
		if _, ok := school.Metric(metric); !ok {
			return nil, fmt.Errorf("utility %q: unknown metric %q", name, metric)
		}
	}
	return &Utility{Name: name, Weights: weights}, nil
}

// Score computes the weighted sum over the current state. Summation runs in
// sorted key order so identical states always produce bit-identical floats.
// Scores are diagnostic: they never feed back into the simulation.
func (u *Utility) Score(e *school.Ecosystem) (float64, error) {
	names := make([]string, 0, len(u.Weights))
	for name := range u.Weights {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0.0
	for _, name := range names {
		fn, ok := school.Metric(name)
		if !ok {
			return 0, fmt.Errorf("utility %q: unknown metric %q", u.Name, name)
		}
		total += u.Weights[name] * fn(e)
	}
	return total, nil
}

// Defaults returns the three illustrative lenses: the people doing the
// work, the people reading the dashboard, and the people paying tuition.
func Defaults() []*Utility {
	return []*Utility{
		must(New("TeacherPerspective", map[string]float64{
			"burnout_index":               -0.7,
			"workload_index":              -0.5,
			"student_learning_efficiency": 0.3,
			"leadership_trust_battery":    0.4,
			"recruitment_difficulty":      -0.3,
		})),
		must(New("ManagementKPIPerspective", map[string]float64{
			"efficiency_index_recognized": 0.6,
			"external_spend":              -0.3,
			"competitor_gap_index":        -0.4,
			"student_exit_rate":           -0.4,
		})),
		must(New("StudentParentPerspective", map[string]float64{
			"student_learning_efficiency": 0.6,
			"ai_accessibility_index":      0.4,
			"ai_service_quality_index":    0.4,
			"burnout_index":               -0.3,
			"student_exit_rate":           -0.5,
		})),
	}
}

func must(u *Utility, err error) *Utility {
	if err != nil {
		panic(err)
	}
	return u
}
