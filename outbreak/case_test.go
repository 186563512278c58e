package outbreak

import (
	"math"
	"testing"
)

func TestNewCase_TracedIsolatedAtSymptomOnset(t *testing.T) {
	// GIVEN rho = 1.0, every case is contact-traced
	cfg := mustConfig(t, 112, 84, 20, 1.0, 2.5, 0.1, Presymptomatic15, IsolationDelayShort)
	draws := newSamplers(cfg, NewSimulationKey(42).ForRealization(0))

	for i := 0; i < 1000; i++ {
		c := newCase(cfg, draws, float64(i), nil)
		if !c.IsTraced {
			t.Fatalf("case %d: not traced with rho = 1", i)
		}
		// THEN isolation happens exactly at symptom onset
		if c.IsolationTime != c.SymptomsTime {
			t.Fatalf("case %d: isolation %v != symptoms %v", i, c.IsolationTime, c.SymptomsTime)
		}
	}
}

func TestNewCase_SubclinicalUntracedNeverIsolated(t *testing.T) {
	// GIVEN rho = 0 and subclinical_prob = 1, no case is ever isolated
	cfg := mustConfig(t, 112, 84, 20, 0.0, 2.5, 1.0, Presymptomatic15, IsolationDelayShort)
	draws := newSamplers(cfg, NewSimulationKey(42).ForRealization(0))

	for i := 0; i < 1000; i++ {
		c := newCase(cfg, draws, float64(i), nil)
		if c.IsTraced {
			t.Fatalf("case %d: traced with rho = 0", i)
		}
		if !c.IsSubclinical {
			t.Fatalf("case %d: not subclinical with subclinical_prob = 1", i)
		}
		if !math.IsInf(c.IsolationTime, 1) {
			t.Fatalf("case %d: isolation %v, want +Inf", i, c.IsolationTime)
		}
	}
}

func TestNewCase_TimelineOrdering(t *testing.T) {
	cfg := mustConfig(t, 112, 84, 20, 0.5, 2.5, 0.1, Presymptomatic15, IsolationDelayShort)
	draws := newSamplers(cfg, NewSimulationKey(9).ForRealization(0))

	for i := 0; i < 1000; i++ {
		infectionTime := float64(i) * 0.5
		c := newCase(cfg, draws, infectionTime, nil)

		if c.IncubationPeriod <= 0 {
			t.Fatalf("case %d: non-positive incubation period %v", i, c.IncubationPeriod)
		}
		if !(c.InfectionTime <= c.SymptomsTime && c.SymptomsTime <= c.IsolationTime) {
			t.Fatalf("case %d: timeline out of order: infection=%v symptoms=%v isolation=%v",
				i, c.InfectionTime, c.SymptomsTime, c.IsolationTime)
		}
		if !c.IsTraced && !c.IsSubclinical && c.IsolationTime <= c.SymptomsTime {
			t.Fatalf("case %d: symptomatic untraced case isolated without positive delay", i)
		}
	}
}

func TestNewCase_ForcedTracingOverridesRho(t *testing.T) {
	cfg := mustConfig(t, 112, 84, 20, 1.0, 2.5, 0.1, Presymptomatic15, IsolationDelayShort)
	draws := newSamplers(cfg, NewSimulationKey(1).ForRealization(0))

	untraced := false
	for i := 0; i < 100; i++ {
		c := newCase(cfg, draws, 0, &untraced)
		if c.IsTraced {
			t.Fatalf("case %d: traced despite forced-untraced flag", i)
		}
	}

	cfgNoTracing := mustConfig(t, 112, 84, 20, 0.0, 2.5, 0.1, Presymptomatic15, IsolationDelayShort)
	drawsNoTracing := newSamplers(cfgNoTracing, NewSimulationKey(1).ForRealization(0))
	traced := true
	c := newCase(cfgNoTracing, drawsNoTracing, 0, &traced)
	if !c.IsTraced {
		t.Error("case untraced despite forced-traced flag")
	}
}
