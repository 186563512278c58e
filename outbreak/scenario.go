// Implements the Monte Carlo scenario runner: N independent realizations
// executed by a fixed-size worker pool, then reduced into ScenarioStats.

package outbreak

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// ScenarioRunner repeats the realization process NumSimulations times.
// Realizations share only the read-only Config; each owns a private case
// list, queue, and RNG stream, so workers need no coordination beyond the
// final join, and correctness does not depend on interleaving.
type ScenarioRunner struct {
	config         *Config
	numSimulations int
	workers        int
	key            SimulationKey
}

// NewScenarioRunner creates a runner for numSimulations independent
// realizations of cfg, executed by a pool of the given size. workers <= 0
// selects runtime.NumCPU(). Panics if numSimulations < 1.
func NewScenarioRunner(cfg *Config, numSimulations, workers int, key SimulationKey) *ScenarioRunner {
	if numSimulations < 1 {
		panic("ScenarioRunner: numSimulations must be >= 1")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > numSimulations {
		workers = numSimulations
	}
	return &ScenarioRunner{
		config:         cfg,
		numSimulations: numSimulations,
		workers:        workers,
		key:            key,
	}
}

// Run executes all realizations and returns the aggregated statistics.
// Each worker writes results into index-owned slots, so the only
// synchronization is the final WaitGroup join before the reduction.
func (sr *ScenarioRunner) Run() ScenarioStats {
	logrus.Debugf("running %d realizations on %d workers", sr.numSimulations, sr.workers)

	results := make([]RealizationResult, sr.numSimulations)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < sr.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				rng := sr.key.ForRealization(idx)
				results[idx] = NewRealization(sr.config, rng).Run()
			}
		}()
	}
	for i := 0; i < sr.numSimulations; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	agg := aggregate(results)
	logrus.Debugf("scenario complete: median effective R0 %.4f, controlled fraction %.4f",
		agg.EffectiveR0Median, agg.ControlledFraction)
	return agg
}
