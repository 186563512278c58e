// Implements the Realization, a single outbreak instance that expands the
// branching process from its seed cases until the pending queue drains or the
// case cap trips.

package outbreak

import "math/rand/v2"

// MaxCases is the hard per-realization case cap: a runaway-outbreak circuit
// breaker that keeps memory and time bounded in super-critical parameter
// regimes.
const MaxCases = 5000

// Realization is one Monte Carlo outbreak instance. It exclusively owns an
// append-only case list (insertion order = discovery order), a FIFO queue of
// cases awaiting expansion, and the realized reproduction number of every
// processed case. No Case is ever shared across Realizations; the only shared
// object is the read-only Config.
//
// Thread-safety: NOT thread-safe. All methods must be called from the same
// goroutine. Parallelism lives one level up, in the ScenarioRunner.
type Realization struct {
	config *Config
	draws  *samplers

	cases           []*Case
	pending         CaseQueue
	secondaryCounts []int

	casesInControl int
}

// NewRealization seeds the outbreak with cfg.InitialCases untraced cases at
// time zero. Seeds go through the same registration path as secondary cases;
// the forced-untraced flag is the only thing distinguishing them.
func NewRealization(cfg *Config, rng *rand.Rand) *Realization {
	r := &Realization{
		config: cfg,
		draws:  newSamplers(cfg, rng),
	}
	untraced := false
	for i := 0; i < cfg.InitialCases; i++ {
		r.register(newCase(cfg, r.draws, 0, &untraced))
	}
	return r
}

// register appends a case to the discovery-ordered case list and queues it
// for expansion.
func (r *Realization) register(c *Case) {
	r.cases = append(r.cases, c)
	r.pending.Enqueue(c)
}

// expand draws the secondary cases of c and registers the survivors. Each of
// the k candidate infections happens at c's infection time plus a serial
// interval located at c's own incubation period; candidates past c's
// isolation time or past the horizon are dropped. Returns c's realized
// reproduction number.
func (r *Realization) expand(c *Case) int {
	k := r.draws.offspring.Rand()
	produced := 0
	for i := 0; i < k; i++ {
		infectionTime := c.InfectionTime + r.draws.serial.Rand(c.IncubationPeriod)
		if infectionTime > c.IsolationTime || infectionTime > r.config.Horizon {
			// An isolated case cannot transmit further; the horizon cuts
			// everything else.
			continue
		}
		if len(r.cases) >= MaxCases {
			break
		}
		r.register(newCase(r.config, r.draws, infectionTime, nil))
		produced++
	}
	return produced
}

// Run expands the branching process to completion: the pending queue drains,
// or the case count reaches MaxCases. Termination is guaranteed because every
// retained infection time is bounded by the horizon and the cap bounds the
// total case count. Returns the per-realization summary.
func (r *Realization) Run() RealizationResult {
	for r.pending.Len() > 0 && len(r.cases) < MaxCases {
		c := r.pending.Dequeue()
		r.secondaryCounts = append(r.secondaryCounts, r.expand(c))
	}

	r.casesInControl = 0
	for _, c := range r.cases {
		if c.InfectionTime >= r.config.ControlStart {
			r.casesInControl++
		}
	}
	// A cap-truncated outbreak is runaway by definition: count it as active
	// in the control window even when truncation happened to leave no case at
	// or past ControlStart.
	if len(r.cases) >= MaxCases && r.casesInControl == 0 {
		r.casesInControl = 1
	}

	return RealizationResult{
		EffectiveR0:    meanOfCounts(r.secondaryCounts),
		Controlled:     r.casesInControl == 0,
		TotalCases:     len(r.cases),
		CasesInControl: r.casesInControl,
	}
}
