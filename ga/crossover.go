// Package ga - order-preserving prefix crossover and swap mutation.
//
// The child copies the donor's prefix [0..k] verbatim, then appends the genes
// of the other parent that are not yet present, in the other parent's order.
// Exactly N-(k+1) genes are missing from the prefix and the other parent holds
// exactly those, so the child is always a valid permutation that keeps the
// origin at position 0.
package ga

// Splice builds a child from donor's prefix [0..k] followed by the genes of
// other that do not occur in that prefix, in other's order.
//
// Contract:
//   - donor and other are permutations of {0..n-1} with equal length n;
//   - 0 <= k < n.
//
// Returns ErrDimensionMismatch when the contract does not hold.
//
// Complexity: O(n) time, O(n) space.
func Splice(donor, other Tour, k int) (Tour, error) {
	var n = len(donor)
	if n == 0 || len(other) != n || k < 0 || k >= n {
		return nil, ErrDimensionMismatch
	}

	child := make(Tour, n)
	seen := make([]bool, n)

	var (
		pos  int
		gene int
	)
	for pos = 0; pos <= k; pos++ {
		gene = donor[pos]
		if gene < 0 || gene >= n || seen[gene] {
			return nil, ErrDimensionMismatch
		}
		child[pos] = gene
		seen[gene] = true
	}
	for _, gene = range other {
		if pos == n {
			break
		}
		if gene < 0 || gene >= n {
			return nil, ErrDimensionMismatch
		}
		if seen[gene] {
			continue
		}
		child[pos] = gene
		seen[gene] = true
		pos++
	}
	if pos != n {
		// other was not a permutation of the same genes.
		return nil, ErrDimensionMismatch
	}

	return child, nil
}

// Mutate rolls a uniform value in [0,1) and, when it is <= chance, swaps the
// genes at two independently drawn positions in [1, len(t)-1]. The origin is
// never moved. Equal draws leave t unchanged. Reports whether a swap was
// attempted.
//
// Complexity: O(1).
func Mutate(t Tour, chance float64, rng Source) bool {
	if rng == nil {
		return false
	}
	roll := rng.Float64()
	if roll > chance || len(t) < 2 {
		return false
	}

	var (
		last = len(t) - 1
		i    = uniformInt(rng, 1, last)
		j    = uniformInt(rng, 1, last)
	)
	t[i], t[j] = t[j], t[i]

	return true
}

// Cross combines parents a and b into a fresh child and applies Mutate with
// the given probability.
//
// Draw order: crossover index k ∈ [1, N-2], donor coin (1 ⇒ a donates the
// prefix, 0 ⇒ b does), mutation roll, then the two swap positions.
//
// Tours shorter than three locations admit no crossover index; the child is
// then an independent copy of a and no draws are made.
//
// Complexity: O(N).
func Cross(a, b Tour, mutationChance float64, rng Source) (Tour, error) {
	if rng == nil {
		return nil, ErrNilRNG
	}
	var n = len(a)
	if n == 0 || len(b) != n {
		return nil, ErrDimensionMismatch
	}
	if n < 3 {
		return a.Clone(), nil
	}

	k := uniformInt(rng, 1, n-2)
	donor, other := b, a
	if rng.Intn(2) == 1 {
		donor, other = a, b
	}

	child, err := Splice(donor, other, k)
	if err != nil {
		return nil, err
	}
	Mutate(child, mutationChance, rng)

	return child, nil
}
