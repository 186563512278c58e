// Aggregates per-realization outcomes into scenario-level statistics
// for final reporting.

package outbreak

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RealizationResult summarizes one completed outbreak realization.
// Produced once by Realization.Run and never mutated afterwards.
type RealizationResult struct {
	EffectiveR0    float64 // mean realized secondary-case count across processed cases
	Controlled     bool    // true when no case was infected at or after ControlStart
	TotalCases     int     // total cases ever created, capped at MaxCases
	CasesInControl int     // cases with InfectionTime >= ControlStart (forced to 1 on cap truncation)
}

// ScenarioStats aggregates all realizations of one scenario.
type ScenarioStats struct {
	Realizations       int
	EffectiveR0Median  float64 // median of per-realization EffectiveR0 values
	ControlledFraction float64 // fraction of realizations flagged controlled, in [0,1]
}

// aggregate reduces the complete result set into scenario statistics. It runs
// only after every realization has reported; there is no partial or streaming
// aggregation.
func aggregate(results []RealizationResult) ScenarioStats {
	agg := ScenarioStats{Realizations: len(results)}
	if len(results) == 0 {
		return agg
	}
	means := make([]float64, len(results))
	controlled := 0
	for i, res := range results {
		means[i] = res.EffectiveR0
		if res.Controlled {
			controlled++
		}
	}
	sort.Float64s(means)
	agg.EffectiveR0Median = stat.Quantile(0.5, stat.Empirical, means, nil)
	agg.ControlledFraction = float64(controlled) / float64(len(results))
	return agg
}

// meanOfCounts returns the mean of a count list, or 0 for an empty list.
func meanOfCounts(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}
	values := make([]float64, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}
	return stat.Mean(values, nil)
}

// Print displays the aggregated statistics at the end of a scenario run.
func (s ScenarioStats) Print() {
	fmt.Println("=== Scenario Statistics ===")
	fmt.Printf("Realizations          : %d\n", s.Realizations)
	fmt.Printf("Effective R0 (median) : %.4f\n", s.EffectiveR0Median)
	fmt.Printf("Controlled fraction   : %.4f\n", s.ControlledFraction)
}
