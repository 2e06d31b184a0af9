// Package ga - tour utilities.
//
// Helpers that operate purely on tour structure (index sequences), without
// touching coordinates:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - ValidateTour: permutation plus the fixed origin at position 0.
//   - ValidatePopulation: ValidateTour for every member.
//   - InitTour / InitPopulation: random origin-fixed permutations.
package ga

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces the tour invariant: len(t) == n, t[0] == Origin and
// every location index appears exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(t Tour, n int) error {
	if err := ValidatePermutation(t, n); err != nil {
		return err
	}
	if t[0] != Origin {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidatePopulation runs ValidateTour on every member of pop.
//
// Complexity: O(len(pop)·n).
func ValidatePopulation(pop Population, n int) error {
	for _, t := range pop {
		if err := ValidateTour(t, n); err != nil {
			return err
		}
	}

	return nil
}

// InitTour returns [0, 1, ..., numLocs-1] with every position except the
// origin shuffled by rng.
//
// Complexity: O(numLocs).
func InitTour(numLocs int, rng Source) (Tour, error) {
	if numLocs < 1 {
		return nil, ErrTooFewLocations
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	t := make(Tour, numLocs)
	var i int
	for i = range t {
		t[i] = i
	}
	shuffleInPlace(t[1:], rng)

	return t, nil
}

// InitPopulation builds generation 0 by calling InitTour popSize times.
//
// Complexity: O(popSize·numLocs).
func InitPopulation(popSize, numLocs int, rng Source) (Population, error) {
	if popSize < 0 {
		return nil, ErrPopulationTooSmall
	}

	pop := make(Population, popSize)
	var (
		i   int
		err error
	)
	for i = 0; i < popSize; i++ {
		if pop[i], err = InitTour(numLocs, rng); err != nil {
			return nil, err
		}
	}

	return pop, nil
}
