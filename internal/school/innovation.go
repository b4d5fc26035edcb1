// Innovation rules: in-house AI capability only grows when six readiness
// conditions hold at once. Anything less and the capability that exists
// quietly evaporates.
package school

// tickInnovation resolves the innovation layer. The readiness gate requires
// assets, repository, clarity, openness, infrastructure, and budget headroom
// all at the same time.
func (e *Ecosystem) tickInnovation() {
	ready := e.Education.AssetIndex >= 0.5 &&
		e.Education.RepositoryLevel >= 0.5 &&
		e.Infra.DXClarity >= 0.6 &&
		e.Change.Suppression < 0.4 &&
		e.Infra.Health >= 0.5 &&
		e.Env.BudgetPressure < 0.8

	if ready {
		e.Innovation.Potential += 0.05
		if e.Innovation.Potential > 1.0 {
			e.Innovation.Potential = 1.0
		}

		budget := 1.0 - 0.5*e.Env.BudgetPressure
		if budget > 0 {
			e.Innovation.LocalAIInfra += 0.04 * e.Innovation.Potential * budget
			e.Innovation.LocalAIInfra = clamp01(e.Innovation.LocalAIInfra)

			// Quality and access ride on the level just reached.
			e.Innovation.ServiceQuality += 0.05 * e.Innovation.LocalAIInfra
			e.Innovation.Accessibility += 0.04 * e.Innovation.LocalAIInfra
		}
	} else {
		if e.Change.Suppression > 0.6 || e.Infra.DXClarity < 0.3 {
			e.Innovation.Potential -= 0.02
		}
		e.Innovation.LocalAIInfra -= 0.01
		e.Innovation.ServiceQuality -= 0.01
		e.Innovation.Accessibility -= 0.01
	}

	e.Innovation.Potential = clamp01(e.Innovation.Potential)
	e.Innovation.LocalAIInfra = clamp01(e.Innovation.LocalAIInfra)
	e.Innovation.ServiceQuality = clamp01(e.Innovation.ServiceQuality)
	e.Innovation.Accessibility = clamp01(e.Innovation.Accessibility)
}
