// Infrastructure rules: the physical and technical foundation decays unless
// someone invests, and weak portal/database layers push work back onto
// people.
package school

// tickInfrastructure applies the baseline yearly decay of buildings,
// networks, and equipment.
func (e *Ecosystem) tickInfrastructure() {
	e.Infra.Health += -0.03 + e.noise(0.02)
	e.Infra.Health = clamp01(e.Infra.Health)
}

// tickDXClarity erodes the shared understanding of where the digital
// transformation is supposed to go. Clarity fades on its own; only the
// change-seed and portal rules ever rebuild it.
func (e *Ecosystem) tickDXClarity() {
	e.Infra.DXClarity += -0.02 + e.noise(0.02)
	e.Infra.DXClarity = clamp01(e.Infra.DXClarity)
}

// tickPortalAndDatabase resolves the portal and database layer. When
// navigation and shared data are both immature and nobody knows the
// roadmap, every task routes through a person who "knows how". Investment
// reverses that, damped by how rigid the regulator is.
func (e *Ecosystem) tickPortalAndDatabase() {
	if e.Infra.PortalMaturity < 0.4 && e.Infra.DatabaseFoundation < 0.4 && e.Infra.DXClarity < 0.3 {
		e.Infra.Fragmentation += 0.04 + e.noise(0.02)
		e.External.Workload += 0.02
		e.External.Complexity += 0.03
		e.Education.LearningEfficiency -= 0.02
		e.Output.Productivity -= 0.01
		e.Infra.Personalization += 0.03
	}

	if e.Change.Suppression < 0.4 && e.Infra.DXClarity > 0.5 && e.Infra.Health > 0.4 {
		factor := 1.0 - 0.5*e.Env.RegulationRigidity
		if factor > 0 {
			e.Infra.PortalMaturity += 0.05 * factor
			e.Infra.DatabaseFoundation += 0.05 * factor
			e.Infra.Fragmentation -= 0.05 * factor
			e.Education.AssetIndex += 0.03 * factor
			e.Infra.Personalization -= 0.05 * factor
		}
	}

	e.Infra.PortalMaturity = clamp01(e.Infra.PortalMaturity)
	e.Infra.DatabaseFoundation = clamp01(e.Infra.DatabaseFoundation)
	e.Infra.Fragmentation = clamp01(e.Infra.Fragmentation)
	e.Infra.Personalization = clamp01(e.Infra.Personalization)
	e.External.Workload = clamp01(e.External.Workload)
	e.External.Complexity = clamp01(e.External.Complexity)
	e.Education.LearningEfficiency = clamp01(e.Education.LearningEfficiency)
	e.Education.AssetIndex = clamp01(e.Education.AssetIndex)
	e.Output.Productivity = clamp01(e.Output.Productivity)
}
