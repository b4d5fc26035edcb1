// Package report renders the human-readable surfaces of a run: the state
// summary, the staff survival check, reintegration outcomes, student
// trajectories, and stakeholder scores. The text is illustrative, not a
// machine contract; anything that needs stable parsing reads the metric
// registry instead.
package report

import (
	"fmt"
	"io"

	"github.com/talgya/greenhouse/internal/actors"
	"github.com/talgya/greenhouse/internal/forecast"
	"github.com/talgya/greenhouse/internal/outside"
	"github.com/talgya/greenhouse/internal/school"
	"github.com/talgya/greenhouse/internal/stakeholder"
)

// Summary writes the full ecosystem state plus a short roster sample.
func Summary(w io.Writer, e *school.Ecosystem) {
	var teachers, active, burned, left, rebooted, casualties int
	for _, a := range e.Actors {
		if a.Role != actors.RoleTeacher {
			continue
		}
		teachers++
		if !a.HasLeftSystem {
			active++
		} else {
			left++
		}
		if a.BurnedOut {
			burned++
		}
		if a.RebootedOutside {
			rebooted++
		}
		if a.CasualtyOfSystem {
			casualties++
		}
	}

	fmt.Fprintf(w, "=== %s Ecosystem after %d year(s) ===\n", e.Name, e.YearsSimulated)
	fmt.Fprintf(w, "Infrastructure health        : %.2f\n", e.Infra.Health)
	fmt.Fprintf(w, "DX clarity (roadmap)         : %.2f\n", e.Infra.DXClarity)
	fmt.Fprintf(w, "Staff burnout index          : %.2f\n", e.Workforce.Burnout)
	fmt.Fprintf(w, "Student exit rate (est.)     : %.2f\n", e.Workforce.StudentExitRate)
	fmt.Fprintf(w, "Recruitment difficulty       : %.2f\n", e.Workforce.RecruitmentDifficulty)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Portal maturity (nav DX)     : %.2f\n", e.Infra.PortalMaturity)
	fmt.Fprintf(w, "Database foundation          : %.2f\n", e.Infra.DatabaseFoundation)
	fmt.Fprintf(w, "Process fragmentation index  : %.2f\n", e.Infra.Fragmentation)
	fmt.Fprintf(w, "Task personalization index   : %.2f\n", e.Infra.Personalization)
	fmt.Fprintln(w, "  (high = tasks are highly person-dependent; proxy execution is hard)")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "External system dependency   : %.2f\n", e.External.Dependency)
	fmt.Fprintf(w, "External spend (relative)    : %.2f\n", e.External.Spend)
	fmt.Fprintf(w, "Learning cost index          : %.2f\n", e.External.LearningCost)
	fmt.Fprintf(w, "System complexity            : %.2f\n", e.External.Complexity)
	fmt.Fprintf(w, "Workload index               : %.2f\n", e.External.Workload)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Educational asset index      : %.2f\n", e.Education.AssetIndex)
	fmt.Fprintf(w, "Central repository level     : %.2f\n", e.Education.RepositoryLevel)
	fmt.Fprintf(w, "Student learning efficiency  : %.2f\n", e.Education.LearningEfficiency)
	fmt.Fprintf(w, "Competitor gap index         : %.2f\n", e.Education.CompetitorGap)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Innovation potential index   : %.2f\n", e.Innovation.Potential)
	fmt.Fprintf(w, "Local LLM infra level        : %.2f\n", e.Innovation.LocalAIInfra)
	fmt.Fprintf(w, "AI service quality index     : %.2f\n", e.Innovation.ServiceQuality)
	fmt.Fprintf(w, "AI accessibility index       : %.2f\n", e.Innovation.Accessibility)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Productivity index (real)    : %.2f\n", e.Output.Productivity)
	fmt.Fprintf(w, "Efficiency (true)            : %.2f\n", e.Output.TrueEfficiency)
	fmt.Fprintf(w, "Efficiency (recognized KPI)  : %.2f\n", e.Output.RecognizedEfficiency)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Has SWOT / marketing view    : %t\n", e.Strategy.HasSWOT)
	fmt.Fprintf(w, "Strategic consistency        : %.2f\n", e.Strategy.Consistency)
	fmt.Fprintf(w, "Change request intensity     : %.2f\n", e.Strategy.RequestIntensity)
	fmt.Fprintf(w, "Change rejection rate        : %.2f\n", e.Strategy.RejectionRate)
	fmt.Fprintf(w, "Rhetorical change slogans    : %d\n", e.Strategy.Slogans)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "PM capability                : %.2f\n", e.Strategy.PMCapability)
	fmt.Fprintf(w, "Grand design clarity         : %.2f\n", e.Strategy.DesignClarity)
	fmt.Fprintf(w, "Leadership trust battery     : %.2f\n", e.Trust.Leadership)
	fmt.Fprintf(w, "Info transparency            : %.2f\n", e.Trust.Transparency)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Suppression level (0-1)      : %.2f\n", e.Change.Suppression)
	fmt.Fprintf(w, "Change seeds planted         : %d\n", e.Change.SeedsPlanted)
	fmt.Fprintf(w, "Change seeds suppressed      : %d\n", e.Change.SeedsSuppressed)
	fmt.Fprintf(w, "Systemic opportunity cost    : %.2f\n", e.Change.SystemicCost)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Teachers total               : %d\n", teachers)
	fmt.Fprintf(w, "Teachers active              : %d\n", active)
	fmt.Fprintf(w, "Teachers burned out          : %d\n", burned)
	fmt.Fprintf(w, "Teachers who left            : %d\n", left)
	fmt.Fprintf(w, "Teachers rebooted outside    : %d\n", rebooted)
	fmt.Fprintf(w, "Teacher casualties           : %d\n", casualties)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sample actors snapshot:")
	for i, a := range e.Actors {
		if i >= 5 {
			break
		}
		fmt.Fprintf(w, "  - %s\n", a)
	}
}

// SurvivalTable writes the deterministic outside-survival check for every
// staff member, protected or not.
func SurvivalTable(w io.Writer, e *school.Ecosystem, world *outside.World) {
	fmt.Fprintln(w, "\n=== External World Survival Check (Staff) ===")
	for _, a := range e.Actors {
		if !a.IsStaff() {
			continue
		}
		tag := "ONLY_SAFE_INSIDE"
		if world.Survives(a) {
			tag = "SURVIVES_OUTSIDE"
		}
		fmt.Fprintf(w, "%-20s (%-30s) -> %s\n", a.Name, a.OSVersion, tag)
	}
}

// Reintegration resolves and writes outcomes for staff who left the system.
// Each leaver is drawn at most once: actors already carrying a terminal
// flag are skipped, so calling this twice cannot rewrite anyone's fate.
func Reintegration(w io.Writer, e *school.Ecosystem, world *outside.World) {
	fmt.Fprintln(w, "\n=== Reintegration Outcomes (Teachers/Admins) ===")
	for _, a := range e.Actors {
		if !a.IsStaff() || !a.HasLeftSystem {
			continue
		}
		if a.RebootedOutside || a.CasualtyOfSystem {
			continue
		}

		var tag string
		if world.ReintegrationOutcome(a) == outside.OutcomeRebooted {
			a.RebootedOutside = true
			tag = "REBOOTED_OUTSIDE (found new path)"
		} else {
			a.CasualtyOfSystem = true
			tag = "CASUALTY_OF_SYSTEM (could not reintegrate)"
		}
		fmt.Fprintf(w, "%-20s (%-30s) [choice=%s, oc=%.2f] -> %s\n",
			a.Name, a.OSVersion, a.OpportunityChoice, a.OpportunityCost, tag)
	}
}

// Trajectories estimates each student's future-hope probability, resolves
// the coin flip against the world's stream, and writes the table with the
// aggregate ratio. An empty student body reports ratio 0.0.
func Trajectories(w io.Writer, e *school.Ecosystem, world *outside.World) {
	fmt.Fprintln(w, "\n=== Future Trajectories (Students) ===")

	total, hopeful := 0, 0
	for _, a := range e.Actors {
		if !a.IsStudent() {
			continue
		}
		total++

		p := forecast.FutureHopeProbability(e, world, a)
		a.FutureHopeProbability = p
		a.IsFutureHope = world.Roll(p)

		tag := "AT_RISK (needs better support / ecosystem)"
		if a.IsFutureHope {
			hopeful++
			tag = "FUTURE_HOPE (can likely thrive)"
		}
		fmt.Fprintf(w, "%-12s adapt=%.2f p_future=%.2f -> %s\n", a.Name, a.Adaptability, p, tag)
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(hopeful) / float64(total)
	}
	fmt.Fprintf(w, "\nFuture hope count : %d / %d students\n", hopeful, total)
	fmt.Fprintf(w, "Future hope ratio : %.3f (~%.1f%%)\n", ratio, ratio*100)
}

// Scores writes one line per stakeholder lens.
func Scores(w io.Writer, e *school.Ecosystem, utilities []*stakeholder.Utility) error {
	fmt.Fprintln(w, "\n=== Stakeholder Utility Scores ===")
	for _, u := range utilities {
		score, err := u.Score(e)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-25s: %.3f\n", u.Name, score)
	}
	return nil
}
