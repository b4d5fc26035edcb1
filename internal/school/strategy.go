// Strategy rules: what happens to the declared strategy when suppression is
// high and nobody has done a real strategic review, and how PM capability
// and grand-design clarity couple into everything else.
package school

// tickStrategy resolves the strategy posture. Without a formal review,
// strong suppression turns change pressure into slogans; with one in place
// and suppression low, the posture slowly repairs itself.
func (e *Ecosystem) tickStrategy() {
	s := e.Change.Suppression

	if !e.Strategy.HasSWOT && s > 0.6 {
		e.Strategy.RequestIntensity += 0.03 * s
		e.Strategy.RejectionRate += 0.02 * s
		e.Strategy.Consistency -= 0.03 * s
		e.Strategy.Slogans++
		e.Workforce.Burnout += 0.02 * s
		e.Change.SystemicCost += 0.1 * s
	}

	if e.Strategy.HasSWOT && s < 0.4 && e.Infra.DXClarity > 0.5 {
		e.Strategy.RequestIntensity -= 0.02
		e.Strategy.RejectionRate -= 0.03
		e.Strategy.Consistency += 0.05
	}

	e.Strategy.RequestIntensity = clamp01(e.Strategy.RequestIntensity)
	e.Strategy.RejectionRate = clamp01(e.Strategy.RejectionRate)
	e.Strategy.Consistency = clamp01(e.Strategy.Consistency)
	e.Workforce.Burnout = clamp01(e.Workforce.Burnout)
}

// tickPMAndDesign couples project-management capability and design clarity
// to the rest of the system. Weak PM under change conflict burns people;
// strong PM in an open climate pays out across the board.
func (e *Ecosystem) tickPMAndDesign() {
	weak := e.Strategy.PMCapability < 0.4 && e.Strategy.DesignClarity < 0.4 &&
		e.Strategy.RequestIntensity > 0.4 && e.Strategy.RejectionRate > 0.5
	if weak {
		e.Workforce.Burnout += 0.03
		e.Output.Productivity -= 0.02
		e.Trust.Leadership -= 0.03
		e.Strategy.Consistency -= 0.02
	}

	strong := e.Strategy.PMCapability > 0.6 && e.Strategy.DesignClarity > 0.6 &&
		e.Infra.DXClarity > 0.5 && e.Change.Suppression < 0.4
	if strong {
		e.Workforce.Burnout -= 0.02
		e.Output.Productivity += 0.03
		e.Trust.Leadership += 0.05
		e.Strategy.Consistency += 0.03
	}

	e.Workforce.Burnout = clamp01(e.Workforce.Burnout)
	e.Output.Productivity = clamp01(e.Output.Productivity)
	e.Trust.Leadership = clamp01(e.Trust.Leadership)
	e.Strategy.Consistency = clamp01(e.Strategy.Consistency)
}
