// External-system rules: when internal capability is weak, the school buys
// fixes from vendors. Each purchase works a little and costs a lot, and the
// dependency itself becomes load.
package school

// tickExternalSystems resolves vendor dependency. The attach branch fires
// when infrastructure is weak and nobody can articulate the roadmap; the
// unwind branch needs an open climate and real clarity.
func (e *Ecosystem) tickExternalSystems() {
	if e.Infra.Health < 0.6 && e.Infra.DXClarity < 0.3 {
		e.External.Dependency += 0.05
		e.External.Spend += 0.10
		e.External.LearningCost += 0.05
		e.External.Complexity += 0.04
		e.External.Workload += 0.03

		// The bought tool does patch something.
		e.Infra.Health += 0.01
		e.Workforce.Burnout += 0.02
	}

	if e.Change.Suppression < 0.4 && e.Infra.DXClarity > 0.5 {
		e.External.Dependency -= 0.03
		e.External.Complexity -= 0.03
		e.External.Workload -= 0.02
		e.External.LearningCost -= 0.02
	}

	e.External.Dependency = clamp01(e.External.Dependency)
	e.External.LearningCost = clamp01(e.External.LearningCost)
	e.External.Complexity = clamp01(e.External.Complexity)
	e.External.Workload = clamp01(e.External.Workload)
	e.Infra.Health = clamp01(e.Infra.Health)
	e.Workforce.Burnout = clamp01(e.Workforce.Burnout)
}
