// Package ga - RNG utilities shared by every stochastic operator.
//
// A run owns exactly one generator. Operators take it as a Source so tests can
// script draws, while production code passes the *rand.Rand from NewRNG.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; the loop is single-threaded.
package ga

import "math/rand"

// Source is the subset of *rand.Rand the operators consume.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

var _ Source = (*rand.Rand)(nil)

// NewRNG returns a deterministic generator seeded verbatim with seed.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniformInt draws an integer uniformly from the closed range [lo, hi].
// Requires lo <= hi.
//
// Complexity: O(1).
func uniformInt(rng Source, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng Source) {
	var (
		n = len(a)
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
