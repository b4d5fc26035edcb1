// Dynamics coefficients. Every constant that couples one part of the model
// to burnout, productivity, or efficiency is a named knob here, so scenarios
// can override any of them without touching the tick rules.
package school

// Coefficients weight the burnout, productivity, and efficiency rules.
type Coefficients struct {
	// Burnout drivers. Deficit terms multiply (1 - value).
	InfraToBurnout           float64 `yaml:"infra_to_burnout"`
	DXClarityToBurnout       float64 `yaml:"dx_clarity_to_burnout"`
	WorkloadToBurnout        float64 `yaml:"workload_to_burnout"`
	ComplexityToBurnout      float64 `yaml:"complexity_to_burnout"`
	TrustLackToBurnout       float64 `yaml:"trust_lack_to_burnout"`
	PersonalizationToBurnout float64 `yaml:"personalization_to_burnout"`

	// Burnout relief from working AI infrastructure.
	AIInfraRelief   float64 `yaml:"ai_infra_relief"`
	AIServiceRelief float64 `yaml:"ai_service_relief"`

	// Productivity drains.
	DependencyToProductivity      float64 `yaml:"dependency_to_productivity"`
	ComplexityToProductivity      float64 `yaml:"complexity_to_productivity"`
	WorkloadToProductivity        float64 `yaml:"workload_to_productivity"`
	BadInfraToProductivity        float64 `yaml:"bad_infra_to_productivity"`
	FragmentationToProductivity   float64 `yaml:"fragmentation_to_productivity"`
	PersonalizationToProductivity float64 `yaml:"personalization_to_productivity"`

	// Productivity gains.
	AIInfraToProductivity  float64 `yaml:"ai_infra_to_productivity"`
	AIAccessToProductivity float64 `yaml:"ai_access_to_productivity"`

	// True-efficiency weights. Personalization is subtracted.
	EffInfraWeight              float64 `yaml:"eff_infra_weight"`
	EffDXClarityWeight          float64 `yaml:"eff_dx_clarity_weight"`
	LowSuppressionBonus         float64 `yaml:"low_suppression_bonus"`
	AIInfraToEfficiency         float64 `yaml:"ai_infra_to_efficiency"`
	DatabaseToEfficiency        float64 `yaml:"database_to_efficiency"`
	PortalToEfficiency          float64 `yaml:"portal_to_efficiency"`
	PersonalizationToEfficiency float64 `yaml:"personalization_to_efficiency"`
}

// DefaultCoefficients returns the documented default dynamics.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		InfraToBurnout:           0.1,
		DXClarityToBurnout:       0.1,
		WorkloadToBurnout:        0.05,
		ComplexityToBurnout:      0.05,
		TrustLackToBurnout:       0.05,
		PersonalizationToBurnout: 0.05,

		AIInfraRelief:   0.04,
		AIServiceRelief: 0.03,

		DependencyToProductivity:      0.03,
		ComplexityToProductivity:      0.04,
		WorkloadToProductivity:        0.02,
		BadInfraToProductivity:        0.02,
		FragmentationToProductivity:   0.03,
		PersonalizationToProductivity: 0.03,

		AIInfraToProductivity:  0.05,
		AIAccessToProductivity: 0.03,

		EffInfraWeight:              0.4,
		EffDXClarityWeight:          0.3,
		LowSuppressionBonus:         0.1,
		AIInfraToEfficiency:         0.1,
		DatabaseToEfficiency:        0.05,
		PortalToEfficiency:          0.05,
		PersonalizationToEfficiency: 0.05,
	}
}
