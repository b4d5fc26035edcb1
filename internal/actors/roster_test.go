package actors

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestGenerateStudents(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	students := GenerateStudents(rng, 200, "StudentOS-1.0")

	if len(students) != 200 {
		t.Fatalf("GenerateStudents() returned %d students, want 200", len(students))
	}
	for i, s := range students {
		if want := fmt.Sprintf("Student%d", i+1); s.Name != want {
			t.Errorf("student %d Name = %q, want %q", i, s.Name, want)
		}
		if s.Role != RoleStudent {
			t.Errorf("student %d Role = %q, want %q", i, s.Role, RoleStudent)
		}
		if !s.Protected {
			t.Errorf("student %d should start protected", i)
		}
		if s.Adaptability < 0.1 || s.Adaptability > 0.9 {
			t.Errorf("student %d Adaptability = %v, want within [0.1, 0.9]", i, s.Adaptability)
		}
		if s.OpportunityChoice != ChoiceNone {
			t.Errorf("student %d OpportunityChoice = %q, want %q", i, s.OpportunityChoice, ChoiceNone)
		}
	}
}

func TestGenerateStudentsDeterministic(t *testing.T) {
	a := GenerateStudents(rand.New(rand.NewSource(7)), 50, "StudentOS-1.0")
	b := GenerateStudents(rand.New(rand.NewSource(7)), 50, "StudentOS-1.0")

	for i := range a {
		if a[i].Adaptability != b[i].Adaptability {
			t.Fatalf("student %d Adaptability differs across identical seeds: %v vs %v",
				i, a[i].Adaptability, b[i].Adaptability)
		}
		if a[i].Attitude != b[i].Attitude {
			t.Fatalf("student %d Attitude differs across identical seeds: %q vs %q",
				i, a[i].Attitude, b[i].Attitude)
		}
	}
}

func TestGenerateStudentsAttitudeSpread(t *testing.T) {
	students := GenerateStudents(rand.New(rand.NewSource(3)), 1000, "StudentOS-1.0")

	counts := map[Attitude]int{}
	for _, s := range students {
		counts[s.Attitude]++
	}
	// Neutral is the 70% middle band; with n=1000 it always dominates.
	if counts[AttitudeNeutral] <= counts[AttitudeSupport] || counts[AttitudeNeutral] <= counts[AttitudeResist] {
		t.Errorf("attitude counts = %v, want neutral majority", counts)
	}
	if counts[AttitudeSupport] == 0 || counts[AttitudeResist] == 0 {
		t.Errorf("attitude counts = %v, want all three attitudes present", counts)
	}
}
