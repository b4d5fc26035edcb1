// Change-seed rules: every high-adaptability staff member plants one reform
// attempt per year, and the suppression level decides whether those seeds
// grow or get crushed in front of the students.
package school

// tickChangeSeeds counts this year's change seeds and resolves the
// roster-wide consequences of suppressing or welcoming them. No high
// adapters on staff means nothing happens at all.
func (e *Ecosystem) tickChangeSeeds() {
	seeds := 0
	for _, a := range e.Actors {
		if a.IsStaff() && a.Adaptability >= 0.7 {
			seeds++
		}
	}
	if seeds == 0 {
		return
	}

	e.Change.SeedsPlanted += seeds
	s := e.Change.Suppression

	if s > 0.5 {
		e.Change.SeedsSuppressed += seeds
		e.Change.SystemicCost += float64(seeds) * 0.4 * s
		e.Workforce.Burnout += 0.04 * s
		e.Infra.DXClarity -= 0.02 * s

		// The students watch it happen.
		for _, a := range e.Actors {
			if a.IsStudent() {
				a.Adaptability -= 0.01 * s
				if a.Adaptability < 0 {
					a.Adaptability = 0
				}
			}
		}
	} else {
		openness := 1.0 - s
		e.Infra.Health += 0.04 * openness
		e.Infra.DXClarity += 0.08 * openness
		e.Workforce.Burnout -= 0.02 * openness
	}

	e.Infra.Health = clamp01(e.Infra.Health)
	e.Infra.DXClarity = clamp01(e.Infra.DXClarity)
	e.Workforce.Burnout = clamp01(e.Workforce.Burnout)
}
