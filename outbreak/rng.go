package outbreak

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible scenario run.
// Two scenario runs with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical statistics.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// realizationStream returns the RNG stream name for realization N.
func realizationStream(index int) string {
	return fmt.Sprintf("realization_%d", index)
}

// ForRealization returns a deterministically-seeded RNG for the realization
// at the given index. All random draws of that realization (tracing,
// subclinical status, incubation, delays, offspring counts, serial intervals)
// consume this single stream.
//
// Derivation formula: PCG seeded with (key, key XOR fnv1a64(streamName)).
// The stream depends only on the key and the realization index, never on
// goroutine scheduling, so parallel scenario runs stay reproducible.
func (k SimulationKey) ForRealization(index int) *rand.Rand {
	derived := uint64(k) ^ fnv1a64(realizationStream(index))
	return rand.New(rand.NewPCG(uint64(k), derived))
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
