package actors

import (
	"strings"
	"testing"
)

func TestStatusPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		want  string
	}{
		{"fresh", Actor{}, "in_system"},
		{"burned out", Actor{BurnedOut: true}, "burned_out"},
		{"left", Actor{BurnedOut: true, HasLeftSystem: true}, "left"},
		{"rebooted", Actor{BurnedOut: true, HasLeftSystem: true, RebootedOutside: true}, "rebooted"},
		{"casualty", Actor{BurnedOut: true, HasLeftSystem: true, CasualtyOfSystem: true}, "casualty"},
		{"casualty beats rebooted", Actor{RebootedOutside: true, CasualtyOfSystem: true}, "casualty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.actor.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRolePredicates(t *testing.T) {
	teacher := Actor{Role: RoleTeacher}
	admin := Actor{Role: RoleAdmin}
	student := Actor{Role: RoleStudent}

	if !teacher.IsStaff() || !admin.IsStaff() {
		t.Error("teachers and admins should count as staff")
	}
	if student.IsStaff() {
		t.Error("students should not count as staff")
	}
	if !student.IsStudent() {
		t.Error("IsStudent() = false for a student")
	}
	if teacher.IsStudent() {
		t.Error("IsStudent() = true for a teacher")
	}
}

func TestMindsetTags(t *testing.T) {
	tests := []struct {
		os        string
		legacy    bool
		highAdapt bool
	}{
		{"LegacyOS-1995", true, false},
		{"HighAdaptOS-2025 (LLM-aware)", false, true},
		{"HighAdaptOS-2022", false, true},
		{"MasOS-12", false, true},
		{"StudentOS-1.0", false, false},
	}
	for _, tt := range tests {
		a := Actor{OSVersion: tt.os}
		if got := a.Legacy(); got != tt.legacy {
			t.Errorf("Legacy() for %q = %v, want %v", tt.os, got, tt.legacy)
		}
		if got := a.HighAdaptive(); got != tt.highAdapt {
			t.Errorf("HighAdaptive() for %q = %v, want %v", tt.os, got, tt.highAdapt)
		}
	}
}

func TestStringSnapshot(t *testing.T) {
	a := Actor{
		Name:         "LegacyTeacherA",
		Role:         RoleTeacher,
		OSVersion:    "LegacyOS-2000",
		Adaptability: 0.4,
	}
	got := a.String()
	want := "<teacher:LegacyTeacherA os=LegacyOS-2000 adapt=0.40 oc=0.00 in_system>"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringShowsOpportunityChoice(t *testing.T) {
	a := Actor{
		Name:              "T",
		Role:              RoleTeacher,
		BurnedOut:         true,
		OpportunityChoice: ChoiceStayInside,
		OpportunityCost:   0.7,
	}
	if got := a.String(); !strings.Contains(got, "burned_out/opp:stay_inside") {
		t.Errorf("String() = %q, want opportunity choice suffix", got)
	}

	// The zero value and the explicit none both render without a suffix.
	for _, c := range []Choice{"", ChoiceNone} {
		a.OpportunityChoice = c
		if got := a.String(); strings.Contains(got, "opp:") {
			t.Errorf("String() with choice %q = %q, want no opp suffix", c, got)
		}
	}
}
