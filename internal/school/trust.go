// Trust rules: the trust battery drains on any one bad signal and recharges
// only when five good ones line up.
package school

// tickTrust resolves leadership trust and information transparency.
func (e *Ecosystem) tickTrust() {
	s := e.Change.Suppression

	if s > 0.6 || e.Trust.Transparency < 0.4 || e.Infra.DXClarity < 0.3 {
		e.Trust.Leadership -= 0.03
	}

	if s < 0.4 && e.Trust.Transparency > 0.6 &&
		e.Strategy.PMCapability > 0.5 && e.Strategy.DesignClarity > 0.5 &&
		e.Infra.PortalMaturity > 0.5 {
		e.Trust.Leadership += 0.05
	}

	if s > 0.6 {
		e.Trust.Transparency -= 0.02
	} else if s < 0.4 {
		e.Trust.Transparency += 0.02
	}

	e.Trust.Leadership = clamp01(e.Trust.Leadership)
	e.Trust.Transparency = clamp01(e.Trust.Transparency)
}
