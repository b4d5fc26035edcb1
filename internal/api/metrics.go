// Prometheus metrics for a served simulation. The collector carries one
// gauge per headline index and is refreshed after every advance.
package api

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/talgya/greenhouse/internal/school"
)

// Collector bundles the simulation gauges and the gatherer backing the
// /metrics endpoint.
type Collector struct {
	gatherer prometheus.Gatherer

	YearsSimulated       prometheus.Gauge
	BurnoutIndex         prometheus.Gauge
	TrueEfficiency       prometheus.Gauge
	RecognizedEfficiency prometheus.Gauge
	SuppressionLevel     prometheus.Gauge
	ProductivityIndex    prometheus.Gauge
	LearningEfficiency   prometheus.Gauge
	StudentExitRate      prometheus.Gauge
	StaffRemaining       prometheus.Gauge
}

// NewCollector registers the simulation gauges against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}

	gauges := []struct {
		target *prometheus.Gauge
		name   string
		help   string
	}{
		{&c.YearsSimulated, "schoolsim_years_simulated", "Years advanced since the server started."},
		{&c.BurnoutIndex, "schoolsim_burnout_index", "Staff burnout index."},
		{&c.TrueEfficiency, "schoolsim_efficiency_true", "True efficiency, recomputed each year."},
		{&c.RecognizedEfficiency, "schoolsim_efficiency_recognized", "KPI efficiency as leadership sees it (ratchets up)."},
		{&c.SuppressionLevel, "schoolsim_suppression_level", "How hard change attempts are pushed down."},
		{&c.ProductivityIndex, "schoolsim_productivity_index", "Real productivity index."},
		{&c.LearningEfficiency, "schoolsim_student_learning_efficiency", "Student learning efficiency."},
		{&c.StudentExitRate, "schoolsim_student_exit_rate", "Estimated share of students leaving."},
		{&c.StaffRemaining, "schoolsim_staff_remaining", "Staff members who have not left the system."},
	}
	for _, g := range gauges {
		gauge, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: g.name,
			Help: g.help,
		}), g.name)
		if err != nil {
			return nil, err
		}
		*g.target = gauge
	}

	return c, nil
}

// Observe refreshes every gauge from the current ecosystem state.
func (c *Collector) Observe(e *school.Ecosystem) {
	if c == nil {
		return
	}

	remaining := 0
	for _, a := range e.Actors {
		if a.IsStaff() && !a.HasLeftSystem {
			remaining++
		}
	}

	c.YearsSimulated.Set(float64(e.YearsSimulated))
	c.BurnoutIndex.Set(e.Workforce.Burnout)
	c.TrueEfficiency.Set(e.Output.TrueEfficiency)
	c.RecognizedEfficiency.Set(e.Output.RecognizedEfficiency)
	c.SuppressionLevel.Set(e.Change.Suppression)
	c.ProductivityIndex.Set(e.Output.Productivity)
	c.LearningEfficiency.Set(e.Education.LearningEfficiency)
	c.StudentExitRate.Set(e.Workforce.StudentExitRate)
	c.StaffRemaining.Set(float64(remaining))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
