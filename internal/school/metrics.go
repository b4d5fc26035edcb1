// Metric registry: a closed, explicitly enumerated mapping from metric name
// to accessor. Everything that consumes named metrics (stakeholder lenses,
// the run recorder, the API snapshot) resolves through this table, so a
// misspelled name fails loudly instead of reading zero.
package school

import "sort"

// MetricFunc reads one named metric from an ecosystem.
type MetricFunc func(*Ecosystem) float64

var metricTable = map[string]MetricFunc{
	"years_simulated": func(e *Ecosystem) float64 { return float64(e.YearsSimulated) },

	"infrastructure_health":       func(e *Ecosystem) float64 { return e.Infra.Health },
	"dx_clarity":                  func(e *Ecosystem) float64 { return e.Infra.DXClarity },
	"portal_maturity":             func(e *Ecosystem) float64 { return e.Infra.PortalMaturity },
	"database_foundation":         func(e *Ecosystem) float64 { return e.Infra.DatabaseFoundation },
	"process_fragmentation_index": func(e *Ecosystem) float64 { return e.Infra.Fragmentation },
	"task_personalization_index":  func(e *Ecosystem) float64 { return e.Infra.Personalization },

	"strategic_consistency":     func(e *Ecosystem) float64 { return e.Strategy.Consistency },
	"change_request_intensity":  func(e *Ecosystem) float64 { return e.Strategy.RequestIntensity },
	"change_rejection_rate":     func(e *Ecosystem) float64 { return e.Strategy.RejectionRate },
	"rhetorical_change_slogans": func(e *Ecosystem) float64 { return float64(e.Strategy.Slogans) },
	"pm_capability":             func(e *Ecosystem) float64 { return e.Strategy.PMCapability },
	"grand_design_clarity":      func(e *Ecosystem) float64 { return e.Strategy.DesignClarity },

	"suppression_level":         func(e *Ecosystem) float64 { return e.Change.Suppression },
	"systemic_opportunity_cost": func(e *Ecosystem) float64 { return e.Change.SystemicCost },
	"change_seeds_planted":      func(e *Ecosystem) float64 { return float64(e.Change.SeedsPlanted) },
	"change_seeds_suppressed":   func(e *Ecosystem) float64 { return float64(e.Change.SeedsSuppressed) },

	"external_system_dependency": func(e *Ecosystem) float64 { return e.External.Dependency },
	"external_spend":             func(e *Ecosystem) float64 { return e.External.Spend },
	"learning_cost_index":        func(e *Ecosystem) float64 { return e.External.LearningCost },
	"system_complexity":          func(e *Ecosystem) float64 { return e.External.Complexity },
	"workload_index":             func(e *Ecosystem) float64 { return e.External.Workload },

	"educational_asset_index":     func(e *Ecosystem) float64 { return e.Education.AssetIndex },
	"central_repository_level":    func(e *Ecosystem) float64 { return e.Education.RepositoryLevel },
	"student_learning_efficiency": func(e *Ecosystem) float64 { return e.Education.LearningEfficiency },
	"competitor_gap_index":        func(e *Ecosystem) float64 { return e.Education.CompetitorGap },

	"innovation_potential_index": func(e *Ecosystem) float64 { return e.Innovation.Potential },
	"local_llm_infra_level":      func(e *Ecosystem) float64 { return e.Innovation.LocalAIInfra },
	"ai_service_quality_index":   func(e *Ecosystem) float64 { return e.Innovation.ServiceQuality },
	"ai_accessibility_index":     func(e *Ecosystem) float64 { return e.Innovation.Accessibility },

	"leadership_trust_battery": func(e *Ecosystem) float64 { return e.Trust.Leadership },
	"info_transparency":        func(e *Ecosystem) float64 { return e.Trust.Transparency },

	"burnout_index":          func(e *Ecosystem) float64 { return e.Workforce.Burnout },
	"recruitment_difficulty": func(e *Ecosystem) float64 { return e.Workforce.RecruitmentDifficulty },
	"student_exit_rate":      func(e *Ecosystem) float64 { return e.Workforce.StudentExitRate },

	"productivity_index":          func(e *Ecosystem) float64 { return e.Output.Productivity },
	"efficiency_index_true":       func(e *Ecosystem) float64 { return e.Output.TrueEfficiency },
	"efficiency_index_recognized": func(e *Ecosystem) float64 { return e.Output.RecognizedEfficiency },
}

// Metric returns the accessor for name, or false if the name is unknown.
func Metric(name string) (MetricFunc, bool) {
	fn, ok := metricTable[name]
	return fn, ok
}

// MetricNames returns every registered metric name in sorted order.
func MetricNames() []string {
	names := make([]string, 0, len(metricTable))
	for name := range metricTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
