// Macro constraints the school cannot change from the inside.
package school

// Constraints are the fixed environment conditions for a run: budget,
// regulation, and demographics. Read-only once the run starts.
type Constraints struct {
	BudgetPressure      float64 `yaml:"budget_pressure"`
	RegulationRigidity  float64 `yaml:"regulation_rigidity"`
	DemographicPressure float64 `yaml:"demographic_pressure"`
}

// DefaultConstraints returns a middle-of-the-road macro environment.
func DefaultConstraints() Constraints {
	return Constraints{
		BudgetPressure:      0.5,
		RegulationRigidity:  0.5,
		DemographicPressure: 0.5,
	}
}
