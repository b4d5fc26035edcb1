// Workforce rules: structural conditions accumulate into a burnout index,
// the index trips individual staff members against personal thresholds, and
// student families quietly price the school against its competitors.
package school

import (
	"math"

	"github.com/talgya/greenhouse/internal/actors"
)

// tickBurnout accumulates the burnout index from its structural drivers,
// derives recruitment difficulty, and resolves per-staff transitions.
// Trips are one-way: a burned-out actor never un-burns, a leaver never
// comes back.
func (e *Ecosystem) tickBurnout() {
	d := e.Dyn

	e.Workforce.Burnout += d.InfraToBurnout * (1.0 - e.Infra.Health)
	e.Workforce.Burnout += d.DXClarityToBurnout * (1.0 - e.Infra.DXClarity)
	e.Workforce.Burnout += d.WorkloadToBurnout * e.External.Workload
	e.Workforce.Burnout += d.ComplexityToBurnout * e.External.Complexity
	e.Workforce.Burnout += d.TrustLackToBurnout * (1.0 - e.Trust.Leadership)
	e.Workforce.Burnout += d.PersonalizationToBurnout * e.Infra.Personalization

	e.Workforce.Burnout -= d.AIInfraRelief * e.Innovation.LocalAIInfra
	e.Workforce.Burnout -= d.AIServiceRelief * e.Innovation.ServiceQuality

	e.Workforce.Burnout += e.noise(0.02)
	e.Workforce.Burnout = clamp01(e.Workforce.Burnout)

	rd := 0.3 +
		0.2*e.Workforce.Burnout +
		0.2*e.External.Complexity +
		0.2*(1.0-e.Trust.Leadership) +
		0.1*e.Env.DemographicPressure
	if rd > 1.0 {
		rd = 1.0
	}
	e.Workforce.RecruitmentDifficulty = rd

	for _, a := range e.Actors {
		if !a.IsStaff() || a.HasLeftSystem {
			continue
		}
		// More adaptable staff feel the friction sooner.
		threshold := 0.5 + (0.5 - a.Adaptability)
		if a.BurnedOut || e.Workforce.Burnout <= threshold {
			continue
		}

		a.BurnedOut = true
		if a.Adaptability > 0.6 {
			// Adaptable enough to walk; pays the bigger price up front.
			a.HasLeftSystem = true
			a.OpportunityChoice = actors.ChoiceLeaveOutside
			a.OpportunityCost += 1.0
		} else {
			a.OpportunityChoice = actors.ChoiceStayInside
			a.OpportunityCost += 0.7
		}
	}
}

// tickStudentExit estimates the share of students likely to leave. This is
// a pressure gauge, not a roster event: no student is removed.
func (e *Ecosystem) tickStudentExit() {
	raw := 0.2*(1.0-e.Infra.Health) +
		0.2*e.Workforce.Burnout +
		0.2*e.Education.CompetitorGap +
		0.2*math.Max(0, 0.5-e.Education.LearningEfficiency) +
		0.1*(1.0-e.Trust.Leadership) +
		0.1*e.Env.DemographicPressure

	raw -= 0.1 * e.Innovation.Accessibility
	raw -= 0.1 * e.Innovation.ServiceQuality
	raw += e.noise(0.05)

	e.Workforce.StudentExitRate = clamp01(raw)
}
