// Package actors defines the people inside the simulated school: staff and
// students, the mindset tags they carry, and the irreversible outcome state
// they accumulate as years pass.
package actors

import (
	"fmt"
	"strings"
)

// Role classifies an actor's position in the school.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Attitude is an actor's stance toward organizational change.
type Attitude string

const (
	AttitudeResist  Attitude = "resist"
	AttitudeNeutral Attitude = "neutral"
	AttitudeSupport Attitude = "support"
)

// Choice records what a burned-out staff member did about it.
type Choice string

const (
	ChoiceNone         Choice = "none"
	ChoiceStayInside   Choice = "stay_inside"
	ChoiceLeaveOutside Choice = "leave_outside"
)

// highAdaptTags mark mindsets that track the outside world's pace.
var highAdaptTags = []string{"HighAdaptOS", "MasOS", "LLM-aware"}

// Actor is one person in the ecosystem. Identity fields are fixed at
// construction; outcome fields mutate as the simulation and the reporting
// phase resolve them.
type Actor struct {
	Name         string
	Role         Role
	OSVersion    string  // mindset tag, e.g. "LegacyOS-1995", "HighAdaptOS-2025"
	Adaptability float64 // 0..1
	Protected    bool    // shielded from outside selection while inside
	Attitude     Attitude

	// One-way flags: never reset once true.
	BurnedOut        bool
	HasLeftSystem    bool
	RebootedOutside  bool
	CasualtyOfSystem bool

	// Abstract price paid at the burnout fork, and which fork was taken.
	OpportunityCost   float64
	OpportunityChoice Choice

	// Student trajectory results, filled in by the reporting phase.
	FutureHopeProbability float64
	IsFutureHope          bool
}

// IsStaff reports whether the actor takes part in staff-level dynamics
// (change seeds, burnout thresholds, survival checks).
func (a *Actor) IsStaff() bool {
	return a.Role == RoleTeacher || a.Role == RoleAdmin
}

// IsStudent reports whether the actor belongs to the student body.
func (a *Actor) IsStudent() bool {
	return a.Role == RoleStudent
}

// Legacy reports whether the actor carries a legacy mindset tag.
func (a *Actor) Legacy() bool {
	return strings.Contains(a.OSVersion, "LegacyOS")
}

// HighAdaptive reports whether the actor carries one of the
// high-adaptability mindset tags.
func (a *Actor) HighAdaptive() bool {
	for _, tag := range highAdaptTags {
		if strings.Contains(a.OSVersion, tag) {
			return true
		}
	}
	return false
}

// Status returns the actor's primary displayed state. Terminal outcomes
// take precedence over intermediate ones.
func (a *Actor) Status() string {
	switch {
	case a.CasualtyOfSystem:
		return "casualty"
	case a.RebootedOutside:
		return "rebooted"
	case a.HasLeftSystem:
		return "left"
	case a.BurnedOut:
		return "burned_out"
	default:
		return "in_system"
	}
}

// String renders the actor as a one-line snapshot for reports and logs.
func (a *Actor) String() string {
	status := a.Status()
	if c := a.OpportunityChoice; c != ChoiceNone && c != "" {
		status += "/opp:" + string(c)
	}
	return fmt.Sprintf("<%s:%s os=%s adapt=%.2f oc=%.2f %s>",
		a.Role, a.Name, a.OSVersion, a.Adaptability, a.OpportunityCost, status)
}
