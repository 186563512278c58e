package outbreak

import "math"

// Case is one infected individual. The three timeline markers are sampled
// once at construction and never mutated: infection, symptom onset (after the
// incubation period), and isolation (after the onset-to-isolation delay,
// unless tracing or subclinical status decides otherwise).
//
// Invariants: InfectionTime <= SymptomsTime <= IsolationTime, where
// IsolationTime may be +Inf. Traced cases are isolated exactly at symptom
// onset; subclinical untraced cases are never isolated.
type Case struct {
	Config *Config // shared scenario configuration, read-only

	InfectionTime    float64
	IsTraced         bool
	IsSubclinical    bool
	IncubationPeriod float64
	SymptomsTime     float64
	IsolationTime    float64 // +Inf when the case is never isolated
}

// newCase samples a fully-determined Case from the configuration's
// distributions. forcedTraced, when non-nil, overrides the Bernoulli(rho)
// tracing draw; seed cases pass a forced false. This is a pure sampling step:
// it consumes randomness but performs no queue registration.
func newCase(cfg *Config, draws *samplers, infectionTime float64, forcedTraced *bool) *Case {
	c := &Case{Config: cfg, InfectionTime: infectionTime}
	if forcedTraced != nil {
		c.IsTraced = *forcedTraced
	} else {
		c.IsTraced = draws.tracing.Rand() == 1
	}
	c.IsSubclinical = draws.subclinical.Rand() == 1
	c.IncubationPeriod = draws.incubation.Rand()
	c.SymptomsTime = c.InfectionTime + c.IncubationPeriod

	switch {
	case c.IsTraced:
		// Traced cases are detected and isolated at symptom onset, no delay.
		c.IsolationTime = c.SymptomsTime
	case c.IsSubclinical:
		// Subclinical cases never enter the symptom-triggered pathway.
		c.IsolationTime = math.Inf(1)
	default:
		c.IsolationTime = c.SymptomsTime + draws.delay.Rand()
	}
	return c
}
