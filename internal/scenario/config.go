// Package scenario turns a declarative description of a school, its staff,
// and the outside world into a runnable simulation. Loading follows
// defaults, then file overrides, then validation; omitted keys keep their
// default values.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/greenhouse/internal/actors"
	"github.com/talgya/greenhouse/internal/school"
	"github.com/talgya/greenhouse/internal/stakeholder"
)

// Config describes one complete scenario.
type Config struct {
	// Name labels the scenario in logs and run history.
	Name string `yaml:"name"`

	// School is the ecosystem's display name.
	School string `yaml:"school"`

	World       WorldConfig         `yaml:"world"`
	Environment school.Constraints  `yaml:"environment"`
	Dynamics    school.Coefficients `yaml:"dynamics"`
	Initial     school.State        `yaml:"initial"`

	Staff    []StaffConfig  `yaml:"staff"`
	Students StudentsConfig `yaml:"students"`

	Stakeholders []StakeholderConfig `yaml:"stakeholders"`
}

// WorldConfig sets the outside world's selection parameters.
type WorldConfig struct {
	SelectionPressure float64 `yaml:"selection_pressure"`
	AIShiftSpeed      float64 `yaml:"ai_shift_speed"`
}

// StaffConfig describes one named staff member. Attitude defaults to
// neutral when omitted; protected defaults to false, so list it explicitly.
type StaffConfig struct {
	Name         string  `yaml:"name"`
	Role         string  `yaml:"role"`
	OS           string  `yaml:"os"`
	Adaptability float64 `yaml:"adaptability"`
	Protected    bool    `yaml:"protected"`
	Attitude     string  `yaml:"attitude"`
}

// StudentsConfig controls the generated student body.
type StudentsConfig struct {
	Count int    `yaml:"count"`
	OS    string `yaml:"os"`
}

// StakeholderConfig defines one utility lens.
type StakeholderConfig struct {
	Name    string             `yaml:"name"`
	Weights map[string]float64 `yaml:"weights"`
}

// Default returns the demo scenario: a protected school with a mostly
// legacy staff, three high adapters, a hundred students, and a harsh
// fast-moving world outside.
func Default() *Config {
	return &Config{
		Name:   "demo",
		School: "ProtectedSchool",
		World: WorldConfig{
			SelectionPressure: 0.8,
			AIShiftSpeed:      0.9,
		},
		Environment: school.Constraints{
			BudgetPressure:      0.6,
			RegulationRigidity:  0.5,
			DemographicPressure: 0.4,
		},
		Dynamics: school.DefaultCoefficients(),
		Initial:  school.DefaultState(),
		Staff: []StaffConfig{
			{Name: "LegacyDXChief", Role: "admin", OS: "LegacyOS-1995", Adaptability: 0.3, Protected: true, Attitude: "neutral"},
			{Name: "LegacyTeacherA", Role: "teacher", OS: "LegacyOS-2000", Adaptability: 0.4, Protected: true, Attitude: "support"},
			{Name: "LegacyTeacherB", Role: "teacher", OS: "LegacyOS-2005", Adaptability: 0.35, Protected: true, Attitude: "resist"},
			{Name: "HighAdaptTeacher1", Role: "teacher", OS: "HighAdaptOS-2025 (LLM-aware)", Adaptability: 0.9, Protected: false, Attitude: "support"},
			{Name: "HighAdaptTeacher2", Role: "teacher", OS: "HighAdaptOS-2022", Adaptability: 0.8, Protected: false, Attitude: "support"},
			{Name: "HighAdaptTeacher3", Role: "teacher", OS: "HighAdaptOS-2020", Adaptability: 0.75, Protected: true, Attitude: "neutral"},
		},
		Students: StudentsConfig{
			Count: 100,
			OS:    "StudentOS-1.0",
		},
		Stakeholders: defaultStakeholders(),
	}
}

func defaultStakeholders() []StakeholderConfig {
	presets := stakeholder.Defaults()
	out := make([]StakeholderConfig, 0, len(presets))
	for _, u := range presets {
		out = append(out, StakeholderConfig{Name: u.Name, Weights: u.Weights})
	}
	return out
}

// LoadFromFile loads a scenario from a YAML file, layered over the demo
// defaults, and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every knob the config exposes. Unknown stakeholder
// metrics and out-of-range values are rejected here, before anything is
// built.
func (c *Config) Validate() error {
	if c.School == "" {
		return fmt.Errorf("school name must not be empty")
	}

	units := []struct {
		name  string
		value float64
	}{
		{"world.selection_pressure", c.World.SelectionPressure},
		{"world.ai_shift_speed", c.World.AIShiftSpeed},
		{"environment.budget_pressure", c.Environment.BudgetPressure},
		{"environment.regulation_rigidity", c.Environment.RegulationRigidity},
		{"environment.demographic_pressure", c.Environment.DemographicPressure},
		{"initial.randomness", c.Initial.Randomness},
		{"initial.infrastructure.health", c.Initial.Infra.Health},
		{"initial.infrastructure.dx_clarity", c.Initial.Infra.DXClarity},
		{"initial.infrastructure.portal_maturity", c.Initial.Infra.PortalMaturity},
		{"initial.infrastructure.database_foundation", c.Initial.Infra.DatabaseFoundation},
		{"initial.infrastructure.fragmentation", c.Initial.Infra.Fragmentation},
		{"initial.infrastructure.personalization", c.Initial.Infra.Personalization},
		{"initial.strategy.consistency", c.Initial.Strategy.Consistency},
		{"initial.strategy.request_intensity", c.Initial.Strategy.RequestIntensity},
		{"initial.strategy.rejection_rate", c.Initial.Strategy.RejectionRate},
		{"initial.strategy.pm_capability", c.Initial.Strategy.PMCapability},
		{"initial.strategy.design_clarity", c.Initial.Strategy.DesignClarity},
		{"initial.change.suppression", c.Initial.Change.Suppression},
		{"initial.external.dependency", c.Initial.External.Dependency},
		{"initial.external.learning_cost", c.Initial.External.LearningCost},
		{"initial.external.complexity", c.Initial.External.Complexity},
		{"initial.external.workload", c.Initial.External.Workload},
		{"initial.education.asset_index", c.Initial.Education.AssetIndex},
		{"initial.education.repository_level", c.Initial.Education.RepositoryLevel},
		{"initial.education.learning_efficiency", c.Initial.Education.LearningEfficiency},
		{"initial.education.competitor_gap", c.Initial.Education.CompetitorGap},
		{"initial.innovation.potential", c.Initial.Innovation.Potential},
		{"initial.innovation.local_ai_infra", c.Initial.Innovation.LocalAIInfra},
		{"initial.innovation.service_quality", c.Initial.Innovation.ServiceQuality},
		{"initial.innovation.accessibility", c.Initial.Innovation.Accessibility},
		{"initial.trust.leadership", c.Initial.Trust.Leadership},
		{"initial.trust.transparency", c.Initial.Trust.Transparency},
		{"initial.workforce.burnout", c.Initial.Workforce.Burnout},
		{"initial.workforce.recruitment_difficulty", c.Initial.Workforce.RecruitmentDifficulty},
		{"initial.workforce.student_exit_rate", c.Initial.Workforce.StudentExitRate},
		{"initial.output.productivity", c.Initial.Output.Productivity},
		{"initial.output.true_efficiency", c.Initial.Output.TrueEfficiency},
		{"initial.output.recognized_efficiency", c.Initial.Output.RecognizedEfficiency},
	}
	for _, u := range units {
		if u.value < 0 || u.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %g", u.name, u.value)
		}
	}

	if c.Initial.Change.SystemicCost < 0 {
		return fmt.Errorf("initial.change.systemic_cost must be non-negative, got %g", c.Initial.Change.SystemicCost)
	}
	if c.Initial.External.Spend < 0 {
		return fmt.Errorf("initial.external.spend must be non-negative, got %g", c.Initial.External.Spend)
	}
	if c.Initial.Strategy.Slogans < 0 || c.Initial.Change.SeedsPlanted < 0 || c.Initial.Change.SeedsSuppressed < 0 {
		return fmt.Errorf("initial counters must be non-negative")
	}

	validRoles := map[string]bool{"teacher": true, "admin": true}
	validAttitudes := map[string]bool{"": true, "resist": true, "neutral": true, "support": true}
	for i, st := range c.Staff {
		if st.Name == "" {
			return fmt.Errorf("staff[%d]: name must not be empty", i)
		}
		if !validRoles[st.Role] {
			return fmt.Errorf("staff %s: invalid role %q (valid: teacher, admin)", st.Name, st.Role)
		}
		if !validAttitudes[st.Attitude] {
			return fmt.Errorf("staff %s: invalid attitude %q (valid: resist, neutral, support, or empty for neutral)", st.Name, st.Attitude)
		}
		if st.Adaptability < 0 || st.Adaptability > 1 {
			return fmt.Errorf("staff %s: adaptability must be between 0 and 1, got %g", st.Name, st.Adaptability)
		}
	}

	if c.Students.Count < 0 {
		return fmt.Errorf("students.count must be non-negative, got %d", c.Students.Count)
	}

	for _, sh := range c.Stakeholders {
		if sh.Name == "" {
			return fmt.Errorf("stakeholder with empty name")
		}
		for metric := range sh.Weights {
			if _, ok := school.Metric(metric); !ok {
				return fmt.Errorf("stakeholder %s: unknown metric %q", sh.Name, metric)
			}
		}
	}

	return nil
}

// attitudeOrNeutral maps an omitted attitude to neutral.
func attitudeOrNeutral(s string) actors.Attitude {
	if s == "" {
		return actors.AttitudeNeutral
	}
	return actors.Attitude(s)
}
