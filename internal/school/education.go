// Education-asset rules: reusable materials and the central repository
// either compound or rot, and working AI infrastructure lifts learning
// regardless of which way the rest is going.
package school

// tickEducationAssets resolves the teaching-asset layer.
func (e *Ecosystem) tickEducationAssets() {
	if e.Education.AssetIndex < 0.5 && e.Education.RepositoryLevel < 0.3 && e.Infra.DXClarity < 0.3 {
		e.Education.LearningEfficiency -= 0.03
		e.Education.CompetitorGap += 0.05
	}

	if e.Change.Suppression < 0.4 && e.Infra.DXClarity > 0.5 {
		factor := 1.0 - 0.5*e.Env.BudgetPressure
		if factor > 0 {
			e.Education.AssetIndex += 0.05 * factor
			e.Education.RepositoryLevel += 0.05 * factor
			e.Education.LearningEfficiency += 0.04 * factor
			e.Education.CompetitorGap -= 0.03 * factor
		}
	}

	// AI lifts learning even while everything else decays.
	if ai := e.Innovation.LocalAIInfra; ai > 0 {
		e.Education.LearningEfficiency += 0.03 * ai
		e.Education.CompetitorGap -= 0.02 * ai
	}

	e.Education.AssetIndex = clamp01(e.Education.AssetIndex)
	e.Education.RepositoryLevel = clamp01(e.Education.RepositoryLevel)
	e.Education.LearningEfficiency = clamp01(e.Education.LearningEfficiency)
	e.Education.CompetitorGap = clamp01(e.Education.CompetitorGap)
}
