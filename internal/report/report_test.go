package report

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/talgya/greenhouse/internal/actors"
	"github.com/talgya/greenhouse/internal/outside"
	"github.com/talgya/greenhouse/internal/school"
	"github.com/talgya/greenhouse/internal/stakeholder"
)

func testEco(rng *rand.Rand) *school.Ecosystem {
	return school.New("TestSchool", school.DefaultConstraints(), school.DefaultCoefficients(),
		school.DefaultState(), rng)
}

func TestSummary(t *testing.T) {
	e := testEco(rand.New(rand.NewSource(1)))
	e.AddActor(&actors.Actor{Name: "TeacherA", Role: actors.RoleTeacher, OSVersion: "LegacyOS-2000", Adaptability: 0.4})
	e.AddActor(&actors.Actor{Name: "ChiefB", Role: actors.RoleAdmin, OSVersion: "LegacyOS-1995", Adaptability: 0.3})
	e.AddActor(&actors.Actor{Name: "Student1", Role: actors.RoleStudent, OSVersion: "StudentOS-1.0", Adaptability: 0.5})

	var buf bytes.Buffer
	Summary(&buf, e)
	out := buf.String()

	for _, want := range []string{
		"=== TestSchool Ecosystem after 0 year(s) ===",
		"Infrastructure health        : 0.40",
		"Suppression level (0-1)      : 0.80",
		"Has SWOT / marketing view    : false",
		// Admins stay out of the teacher counts.
		"Teachers total               : 1",
		"Teachers active              : 1",
		"Sample actors snapshot:",
		"<teacher:TeacherA os=LegacyOS-2000 adapt=0.40 oc=0.00 in_system>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestSurvivalTableCoversStaffOnly(t *testing.T) {
	e := testEco(rand.New(rand.NewSource(1)))
	world := outside.NewWorld(0.8, 0.9, rand.New(rand.NewSource(2)))
	e.AddActor(&actors.Actor{Name: "HighAdaptT", Role: actors.RoleTeacher, OSVersion: "HighAdaptOS-2025", Adaptability: 0.9, Attitude: actors.AttitudeSupport})
	e.AddActor(&actors.Actor{Name: "LegacyT", Role: actors.RoleTeacher, OSVersion: "LegacyOS-2000", Adaptability: 0.4, Attitude: actors.AttitudeSupport})
	e.AddActor(&actors.Actor{Name: "Bystander", Role: actors.RoleStudent, OSVersion: "StudentOS-1.0", Adaptability: 0.9})

	var buf bytes.Buffer
	SurvivalTable(&buf, e, world)
	out := buf.String()

	if !strings.Contains(out, "=== External World Survival Check (Staff) ===") {
		t.Error("missing survival table header")
	}
	for line, want := range map[string]string{
		"HighAdaptT": "SURVIVES_OUTSIDE",
		"LegacyT":    "ONLY_SAFE_INSIDE",
	} {
		found := false
		for _, l := range strings.Split(out, "\n") {
			if strings.Contains(l, line) && strings.Contains(l, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("no line pairing %s with %s in:\n%s", line, want, out)
		}
	}
	if strings.Contains(out, "Bystander") {
		t.Error("survival table includes a student")
	}
}

func TestReintegrationResolvesEachLeaverOnce(t *testing.T) {
	e := testEco(rand.New(rand.NewSource(1)))
	world := outside.NewWorld(0.8, 0.9, rand.New(rand.NewSource(3)))

	// Effective 1.0 after the burnout penalty: even the worst wiggle clears
	// the 0.89 threshold.
	star := &actors.Actor{
		Name: "Star", Role: actors.RoleTeacher, OSVersion: "HighAdaptOS-2025",
		Adaptability: 1.0, Attitude: actors.AttitudeSupport,
		BurnedOut: true, HasLeftSystem: true,
		OpportunityChoice: actors.ChoiceLeaveOutside, OpportunityCost: 1.0,
	}
	// Effective -0.05 after the penalty: even the best wiggle falls short.
	doomed := &actors.Actor{
		Name: "Doomed", Role: actors.RoleTeacher, OSVersion: "LegacyOS-1995",
		Adaptability: 0.3, Attitude: actors.AttitudeNeutral,
		BurnedOut: true, HasLeftSystem: true,
		OpportunityChoice: actors.ChoiceLeaveOutside, OpportunityCost: 1.0,
	}
	stayer := &actors.Actor{
		Name: "Stayer", Role: actors.RoleTeacher, OSVersion: "LegacyOS-2000",
		Adaptability: 0.4, BurnedOut: true,
		OpportunityChoice: actors.ChoiceStayInside, OpportunityCost: 0.7,
	}
	e.AddActor(star)
	e.AddActor(doomed)
	e.AddActor(stayer)

	var first bytes.Buffer
	Reintegration(&first, e, world)
	out := first.String()

	if !star.RebootedOutside || star.CasualtyOfSystem {
		t.Errorf("star flags = rebooted %v casualty %v, want rebooted only", star.RebootedOutside, star.CasualtyOfSystem)
	}
	if !doomed.CasualtyOfSystem || doomed.RebootedOutside {
		t.Errorf("doomed flags = rebooted %v casualty %v, want casualty only", doomed.RebootedOutside, doomed.CasualtyOfSystem)
	}
	if stayer.RebootedOutside || stayer.CasualtyOfSystem {
		t.Error("stayer never left but got a reintegration outcome")
	}
	if !strings.Contains(out, "REBOOTED_OUTSIDE") || !strings.Contains(out, "CASUALTY_OF_SYSTEM") {
		t.Errorf("reintegration output missing outcome tags:\n%s", out)
	}
	if !strings.Contains(out, "[choice=leave_outside, oc=1.00]") {
		t.Errorf("reintegration output missing choice/cost detail:\n%s", out)
	}

	// A second pass finds everyone already resolved and draws nothing.
	var second bytes.Buffer
	Reintegration(&second, e, world)
	if got := strings.Count(second.String(), "->"); got != 0 {
		t.Errorf("second pass resolved %d actors, want 0", got)
	}
	if !star.RebootedOutside || !doomed.CasualtyOfSystem {
		t.Error("second pass rewrote terminal flags")
	}
}

func TestTrajectories(t *testing.T) {
	e := testEco(rand.New(rand.NewSource(1)))
	world := outside.NewWorld(0.8, 0.9, rand.New(rand.NewSource(4)))
	students := []*actors.Actor{
		{Name: "Student1", Role: actors.RoleStudent, OSVersion: "StudentOS-1.0", Adaptability: 0.2},
		{Name: "Student2", Role: actors.RoleStudent, OSVersion: "StudentOS-1.0", Adaptability: 0.8},
	}
	for _, s := range students {
		e.AddActor(s)
	}
	e.AddActor(&actors.Actor{Name: "T", Role: actors.RoleTeacher, OSVersion: "LegacyOS-2000", Adaptability: 0.4})

	var buf bytes.Buffer
	Trajectories(&buf, e, world)
	out := buf.String()

	if !strings.Contains(out, "=== Future Trajectories (Students) ===") {
		t.Error("missing trajectories header")
	}
	for _, s := range students {
		if s.FutureHopeProbability <= 0 || s.FutureHopeProbability >= 1 {
			t.Errorf("student %s probability = %v, want within (0,1)", s.Name, s.FutureHopeProbability)
		}
	}
	if students[1].FutureHopeProbability <= students[0].FutureHopeProbability {
		t.Errorf("probabilities %v vs %v, want the adaptable student higher",
			students[1].FutureHopeProbability, students[0].FutureHopeProbability)
	}
	// No student has adaptability 0.40; only the teacher does.
	if strings.Contains(out, "adapt=0.40") {
		t.Error("trajectories include a teacher")
	}
	if !strings.Contains(out, "/ 2 students") {
		t.Errorf("missing aggregate count in:\n%s", out)
	}
}

func TestTrajectoriesEmptyStudentBody(t *testing.T) {
	e := testEco(rand.New(rand.NewSource(1)))
	world := outside.NewWorld(0.8, 0.9, rand.New(rand.NewSource(5)))
	e.AddActor(&actors.Actor{Name: "T", Role: actors.RoleTeacher, OSVersion: "LegacyOS-2000", Adaptability: 0.4})

	var buf bytes.Buffer
	Trajectories(&buf, e, world)
	out := buf.String()

	if !strings.Contains(out, "Future hope count : 0 / 0 students") {
		t.Errorf("missing zero count in:\n%s", out)
	}
	if !strings.Contains(out, "Future hope ratio : 0.000 (~0.0%)") {
		t.Errorf("missing zero ratio in:\n%s", out)
	}
}

func TestScores(t *testing.T) {
	e := testEco(rand.New(rand.NewSource(1)))

	var buf bytes.Buffer
	if err := Scores(&buf, e, stakeholder.Defaults()); err != nil {
		t.Fatalf("Scores() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "=== Stakeholder Utility Scores ===") {
		t.Error("missing scores header")
	}
	for _, name := range []string{"TeacherPerspective", "ManagementKPIPerspective", "StudentParentPerspective"} {
		if !strings.Contains(out, name) {
			t.Errorf("scores missing %s", name)
		}
	}
}

func TestEpilogue(t *testing.T) {
	e := testEco(rand.New(rand.NewSource(1)))
	hopeless := &actors.Actor{Name: "Student1", Role: actors.RoleStudent, OSVersion: "StudentOS-1.0"}
	e.AddActor(hopeless)

	var silent bytes.Buffer
	Epilogue(&silent, e)
	if silent.Len() != 0 {
		t.Errorf("epilogue printed %q with no hopeful students, want nothing", silent.String())
	}

	hopeless.IsFutureHope = true
	var buf bytes.Buffer
	Epilogue(&buf, e)
	out := buf.String()
	if !strings.Contains(out, "=== Hidden message ===") {
		t.Error("missing hidden message header")
	}
	if !strings.Contains(out, "this is a fictional school") {
		t.Errorf("hidden message did not decode, got:\n%s", out)
	}
}
