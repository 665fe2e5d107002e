package ea

import "math/rand/v2"

// newWorkerRNG returns a fresh RNG seeded from the process-wide source.
// Every parallel section constructs one of these per task rather than
// sharing a single *rand.Rand across goroutines, since *rand.Rand is not
// safe for concurrent use. The top-level rand/v2 functions used to seed
// it are themselves safe for concurrent use.
func newWorkerRNG() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
