// Student roster generation. Staff are named individually by scenarios;
// the student body is drawn from a distribution.
package actors

import (
	"fmt"
	"math/rand"
)

// Student adaptability is normally distributed and clipped so no one is
// hopeless and no one is superhuman.
const (
	studentAdaptMean   = 0.5
	studentAdaptStdDev = 0.15
	studentAdaptMin    = 0.1
	studentAdaptMax    = 0.9

	// Attitude split: roughly 15% support, 15% resist, the rest neutral.
	studentSupportBelow = 0.15
	studentResistAbove  = 0.85
)

// GenerateStudents draws a student body of the given size from the injected
// random source. Students are protected and named Student1..N in order, so
// a fixed seed always produces the same roster.
func GenerateStudents(rng *rand.Rand, count int, osVersion string) []*Actor {
	students := make([]*Actor, 0, count)
	for i := 0; i < count; i++ {
		adapt := studentAdaptMean + rng.NormFloat64()*studentAdaptStdDev
		if adapt < studentAdaptMin {
			adapt = studentAdaptMin
		}
		if adapt > studentAdaptMax {
			adapt = studentAdaptMax
		}

		attitude := AttitudeNeutral
		switch r := rng.Float64(); {
		case r < studentSupportBelow:
			attitude = AttitudeSupport
		case r > studentResistAbove:
			attitude = AttitudeResist
		}

		students = append(students, &Actor{
			Name:              fmt.Sprintf("Student%d", i+1),
			Role:              RoleStudent,
			OSVersion:         osVersion,
			Adaptability:      adapt,
			Protected:         true,
			Attitude:          attitude,
			OpportunityChoice: ChoiceNone,
		})
	}
	return students
}
