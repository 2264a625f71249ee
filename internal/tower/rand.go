package tower

import "math/rand"

// Rand is the random source every randomized behavior draws from.
// The controller owns one per session; tests may substitute a stub.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand creates the session random source from a seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randRange returns a uniform value in [lo, hi].
func randRange(rng Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
