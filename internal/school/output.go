// Output rules: what the school actually produces, what it is actually
// worth, and what the leadership's KPI claims it is worth. The three
// diverge on purpose.
package school

// tickOutput resolves productivity, true efficiency, and the recognized
// KPI. Productivity carries over year to year; true efficiency is rebuilt
// from the ground up; the recognized number only ever climbs.
func (e *Ecosystem) tickOutput() {
	d := e.Dyn

	e.Output.Productivity -= d.DependencyToProductivity * e.External.Dependency
	e.Output.Productivity -= d.ComplexityToProductivity * e.External.Complexity
	e.Output.Productivity -= d.WorkloadToProductivity * e.External.Workload
	e.Output.Productivity -= d.BadInfraToProductivity * (1.0 - e.Infra.Health)
	e.Output.Productivity -= d.FragmentationToProductivity * e.Infra.Fragmentation
	e.Output.Productivity -= d.PersonalizationToProductivity * e.Infra.Personalization

	e.Output.Productivity += d.AIInfraToProductivity * e.Innovation.LocalAIInfra
	e.Output.Productivity += d.AIAccessToProductivity * e.Innovation.Accessibility

	e.Output.Productivity += e.noise(0.03)
	e.Output.Productivity = clamp01(e.Output.Productivity)

	eff := 0.2
	eff += d.EffInfraWeight * e.Infra.Health
	eff += d.EffDXClarityWeight * e.Infra.DXClarity
	if e.Change.Suppression < 0.4 {
		eff += d.LowSuppressionBonus
	}
	eff += d.AIInfraToEfficiency * e.Innovation.LocalAIInfra
	eff += d.DatabaseToEfficiency * e.Infra.DatabaseFoundation
	eff += d.PortalToEfficiency * e.Infra.PortalMaturity
	eff -= d.PersonalizationToEfficiency * e.Infra.Personalization
	eff += e.noise(0.03)
	e.Output.TrueEfficiency = clamp01(eff)

	// Dependency and complexity read as progress on the dashboard.
	e.Output.RecognizedEfficiency += 0.03 * e.External.Dependency
	e.Output.RecognizedEfficiency += 0.02 * e.External.Complexity
	e.Output.RecognizedEfficiency = clamp01(e.Output.RecognizedEfficiency)
}
