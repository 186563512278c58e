// Package outbreak provides the stochastic branching-process engine for
// estimating whether an infectious-disease outbreak can be contained under a
// contact-tracing and isolation policy.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - case.go: a single infected individual and its sampled timeline
//   - realization.go: one outbreak instance, queue-driven expansion, and the
//     runaway-outbreak case cap
//   - scenario.go: the Monte Carlo runner and its worker pool
//
// # Architecture
//
// A validated, immutable Config (config.go) is shared by reference across
// every Case and Realization; it is the only object shared between
// realizations and is never mutated after construction. Each Realization owns
// its case list, pending queue, and RNG stream exclusively, so realizations
// are embarrassingly parallel. Per-realization results are reduced into
// scenario statistics (metrics.go) only after every realization completes.
//
// Distribution sampling (dist.go) builds on gonum's stat/distuv, plus two
// in-package samplers distuv does not provide: a negative binomial via the
// Gamma-Poisson mixture for offspring counts, and a skew normal for serial
// intervals.
//
// Reproducibility: every realization derives its RNG stream from the master
// SimulationKey and its own index (rng.go), never from goroutine scheduling,
// so a scenario run is bit-for-bit repeatable at any worker count.
package outbreak
