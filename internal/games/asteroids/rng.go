package asteroids

import (
	"math"
	"math/rand/v2"
)

const tau = 2 * math.Pi

// newRNG returns a deterministic generator for seed.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// uniform returns a float in [a, b).
func uniform(r *rand.Rand, a, b float64) float64 {
	return a + (b-a)*r.Float64()
}

// randInt returns an int in [a, b], both inclusive.
func randInt(r *rand.Rand, a, b int) int {
	if b <= a {
		return a
	}
	return a + r.IntN(b-a+1)
}

// weightedIndex picks an index with probability proportional to its weight.
func weightedIndex(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}
