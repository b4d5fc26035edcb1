// Package school holds the ecosystem aggregate and the yearly tick rules
// that evolve it. One Ecosystem value is a closed world: all scalar state
// lives on it, every rule mutates it in place, and the only randomness is
// the stream injected at construction. Bounded fields are clamped to [0,1]
// before any rule returns, so no caller ever observes an out-of-range value.
package school

import (
	"math/rand"
	"time"

	"github.com/talgya/greenhouse/internal/actors"
)

// InfraState is the technical foundation people work on top of.
type InfraState struct {
	Health             float64 `yaml:"health"`
	DXClarity          float64 `yaml:"dx_clarity"`          // shared understanding of the DX roadmap
	PortalMaturity     float64 `yaml:"portal_maturity"`     // navigation and portal UX
	DatabaseFoundation float64 `yaml:"database_foundation"` // shared structured-data layer
	Fragmentation      float64 `yaml:"fragmentation"`       // process fragmentation, high is bad
	Personalization    float64 `yaml:"personalization"`     // person-dependence of tasks, high is bad
}

// StrategyState is the declared strategy and its follow-through.
type StrategyState struct {
	HasSWOT          bool    `yaml:"has_swot"` // a formal strategic review exists
	Consistency      float64 `yaml:"consistency"`
	RequestIntensity float64 `yaml:"request_intensity"` // pressure of incoming change requests
	RejectionRate    float64 `yaml:"rejection_rate"`    // share of change requests turned down
	Slogans          int     `yaml:"slogans"`           // rhetorical change slogans announced so far
	PMCapability     float64 `yaml:"pm_capability"`
	DesignClarity    float64 `yaml:"design_clarity"` // grand-design clarity
}

// ChangeState is how reform attempts fare under suppression.
type ChangeState struct {
	Suppression     float64 `yaml:"suppression"`   // how hard change attempts are pushed down
	SystemicCost    float64 `yaml:"systemic_cost"` // accumulated opportunity cost, unbounded
	SeedsPlanted    int     `yaml:"seeds_planted"`
	SeedsSuppressed int     `yaml:"seeds_suppressed"`
}

// ExternalState is the reliance on outside vendors and the load it creates.
type ExternalState struct {
	Dependency   float64 `yaml:"dependency"`
	Spend        float64 `yaml:"spend"`         // relative cumulative spend, unbounded
	LearningCost float64 `yaml:"learning_cost"` // cost of learning each new external tool
	Complexity   float64 `yaml:"complexity"`
	Workload     float64 `yaml:"workload"`
}

// EducationState is the school's teaching assets and market standing.
type EducationState struct {
	AssetIndex         float64 `yaml:"asset_index"`      // reusable teaching materials
	RepositoryLevel    float64 `yaml:"repository_level"` // central repository maturity
	LearningEfficiency float64 `yaml:"learning_efficiency"`
	CompetitorGap      float64 `yaml:"competitor_gap"` // how far ahead the competition is
}

// InnovationState is the readiness for and level of in-house AI capability.
type InnovationState struct {
	Potential      float64 `yaml:"potential"`
	LocalAIInfra   float64 `yaml:"local_ai_infra"`
	ServiceQuality float64 `yaml:"service_quality"`
	Accessibility  float64 `yaml:"accessibility"`
}

// TrustState is leadership credibility and information flow.
type TrustState struct {
	Leadership   float64 `yaml:"leadership"` // trust battery toward leadership
	Transparency float64 `yaml:"transparency"`
}

// WorkforceState is the human-load signals.
type WorkforceState struct {
	Burnout               float64 `yaml:"burnout"`
	RecruitmentDifficulty float64 `yaml:"recruitment_difficulty"`
	StudentExitRate       float64 `yaml:"student_exit_rate"`
}

// OutputState is what the organization produces and how it is measured.
type OutputState struct {
	Productivity         float64 `yaml:"productivity"`
	TrueEfficiency       float64 `yaml:"true_efficiency"`
	RecognizedEfficiency float64 `yaml:"recognized_efficiency"` // the KPI leadership sees; only ratchets up
}

// State is the full scalar state of an ecosystem, grouped by concern.
// Scenario files override it field by field.
type State struct {
	Randomness float64 `yaml:"randomness"` // 0 disables noise entirely

	Infra      InfraState      `yaml:"infrastructure"`
	Strategy   StrategyState   `yaml:"strategy"`
	Change     ChangeState     `yaml:"change"`
	External   ExternalState   `yaml:"external"`
	Education  EducationState  `yaml:"education"`
	Innovation InnovationState `yaml:"innovation"`
	Trust      TrustState      `yaml:"trust"`
	Workforce  WorkforceState  `yaml:"workforce"`
	Output     OutputState     `yaml:"output"`
}

// DefaultState is the documented starting point: a protected school with
// aging infrastructure, strong suppression, and no AI capability.
func DefaultState() State {
	return State{
		Randomness: 0.05,
		Infra: InfraState{
			Health:             0.4,
			DXClarity:          0.1,
			PortalMaturity:     0.1,
			DatabaseFoundation: 0.1,
			Fragmentation:      0.7,
			Personalization:    0.85,
		},
		Strategy: StrategyState{
			Consistency:      0.2,
			RequestIntensity: 0.3,
			RejectionRate:    0.6,
			PMCapability:     0.2,
			DesignClarity:    0.1,
		},
		Change: ChangeState{
			Suppression: 0.8,
		},
		External: ExternalState{
			Complexity: 0.3,
			Workload:   0.5,
		},
		Education: EducationState{
			AssetIndex:         0.1,
			LearningEfficiency: 0.4,
			CompetitorGap:      0.1,
		},
		Trust: TrustState{
			Leadership:   0.4,
			Transparency: 0.3,
		},
		Workforce: WorkforceState{
			RecruitmentDifficulty: 0.3,
		},
		Output: OutputState{
			Productivity:         0.7,
			TrueEfficiency:       0.4,
			RecognizedEfficiency: 0.1,
		},
	}
}

// Ecosystem is one protected school evolving year by year. Not safe for
// concurrent use; run independent instances in parallel instead.
type Ecosystem struct {
	Name string
	Env  Constraints
	Dyn  Coefficients
	State

	YearsSimulated int
	Actors         []*actors.Actor

	rng *rand.Rand
}

// New creates an ecosystem from the given starting state. The random source
// drives yearly noise; a nil rng gets a time-seeded one.
func New(name string, env Constraints, dyn Coefficients, state State, rng *rand.Rand) *Ecosystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Ecosystem{
		Name:  name,
		Env:   env,
		Dyn:   dyn,
		State: state,
		rng:   rng,
	}
}

// AddActor appends an actor to the roster.
func (e *Ecosystem) AddActor(a *actors.Actor) {
	e.Actors = append(e.Actors, a)
}

// Staff returns teachers and admins in roster order.
func (e *Ecosystem) Staff() []*actors.Actor {
	var out []*actors.Actor
	for _, a := range e.Actors {
		if a.IsStaff() {
			out = append(out, a)
		}
	}
	return out
}

// Students returns student actors in roster order.
func (e *Ecosystem) Students() []*actors.Actor {
	var out []*actors.Actor
	for _, a := range e.Actors {
		if a.IsStudent() {
			out = append(out, a)
		}
	}
	return out
}

// SimulateYear advances the ecosystem by one school year: the year counter
// moves first, then the rules run in fixed order. Later rules read values
// already mutated by earlier ones within the same year.
func (e *Ecosystem) SimulateYear() {
	e.YearsSimulated++

	e.tickInfrastructure()
	e.tickDXClarity()
	e.tickStrategy()
	e.tickPortalAndDatabase()
	e.tickPMAndDesign()
	e.tickChangeSeeds()
	e.tickEducationAssets()
	e.tickInnovation()
	e.tickExternalSystems()
	e.tickTrust()
	e.tickBurnout()
	e.tickStudentExit()
	e.tickOutput()
}

// clamp01 saturates v into [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// noise returns a uniform draw in [-scale, scale] damped by the run's
// randomness dial. Zero when either knob is non-positive, so deterministic
// runs consume no draws from the stream.
func (e *Ecosystem) noise(scale float64) float64 {
	if e.Randomness <= 0 || scale <= 0 {
		return 0
	}
	return (-scale + e.rng.Float64()*2*scale) * e.Randomness
}
