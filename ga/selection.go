// Package ga - fitness-proportional parent selection with elitism boosts.
//
// Probability construction for a population of size n:
//  1. every member starts at 1/n;
//  2. the two best-ranked members are multiplied by topBoost;
//  3. ranks 3..⌊n/2⌋ (1-based) are multiplied by halfBoost;
//  4. the vector is renormalized by dividing each entry by its total.
//
// Entries are indexed by population position, not by rank. Sampling walks the
// vector in that order.
package ga

import "gonum.org/v1/gonum/floats"

const (
	// topBoost multiplies the probability of the two fittest tours.
	topBoost = 6.0

	// halfBoost multiplies the probability of the remaining top half.
	halfBoost = 3.0
)

// Probabilities converts a fitness list (population order, lower distance is
// fitter) into a selection distribution summing to 1.
// For small populations the top-half loop is simply empty.
//
// Complexity: O(n log n) for ranking, O(n) otherwise.
func Probabilities(fitness []FitnessEntry) []float64 {
	var n = len(fitness)
	if n == 0 {
		return nil
	}

	probs := make([]float64, n)
	var i int
	for i = range probs {
		probs[i] = 1.0 / float64(n)
	}

	ranked := Rank(fitness)
	for i = 0; i < 2 && i < n; i++ {
		probs[ranked[i].Index] *= topBoost
	}
	for i = 2; i < n/2; i++ {
		probs[ranked[i].Index] *= halfBoost
	}

	total := floats.Sum(probs)
	for i = range probs {
		probs[i] /= total
	}

	return probs
}

// SelectIndex walks probs accumulating a running sum and returns the first
// index whose running sum exceeds r. If rounding leaves r uncovered, the last
// index is returned.
//
// Complexity: O(n).
func SelectIndex(probs []float64, r float64) int {
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(probs); i++ {
		sum += probs[i]
		if r < sum {
			return i
		}
	}

	return len(probs) - 1
}

// SelectParents draws n independent parent pairs from probs. Each pair
// consumes two uniform draws, A first. Self-pairing is allowed.
//
// Complexity: O(n·len(probs)).
func SelectParents(probs []float64, n int, rng Source) ([]ParentPair, error) {
	if rng == nil {
		return nil, ErrNilRNG
	}
	if len(probs) == 0 {
		return nil, ErrPopulationTooSmall
	}

	pairs := make([]ParentPair, n)
	var (
		i      int
		r1, r2 float64
	)
	for i = 0; i < n; i++ {
		r1 = rng.Float64()
		r2 = rng.Float64()
		pairs[i] = ParentPair{
			A: SelectIndex(probs, r1),
			B: SelectIndex(probs, r2),
		}
	}

	return pairs, nil
}
