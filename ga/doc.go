// Package ga evolves closed Travelling Salesman tours over geographic
// locations with a generational genetic algorithm.
//
// A run is a small state machine:
//
//	Initializing → Evaluating → Selecting → Reproducing ─┬→ Evaluating (next generation)
//	                                                     └→ Finalizing → Done
//
//   - Initializing: build generation 0 from random permutations that keep the
//     origin (index 0) fixed at position 0.
//   - Evaluating: compute the closed-tour distance of every member (lower is fitter).
//   - Selecting: fitness-proportional sampling with elitism boosts
//     (top two ×6, the rest of the top half ×3), one parent pair per slot.
//   - Reproducing: order-preserving prefix crossover plus an optional swap
//     mutation; the children replace the population wholesale.
//   - Finalizing: evaluate the last population and report the rank-0 tour.
//
// Determinism:
//
//	All randomness flows through one *rand.Rand created by NewRNG(seed) and
//	consumed in a fixed order: initialization, then per generation selection
//	(two draws per pair) followed by crossover (index, donor coin, mutation
//	roll, and two swap indices when the roll hits). Equal seed, locations and
//	options reproduce a run bit for bit.
//
// Tours are stored without the trailing return-to-origin element. It is added
// only when a tour is evaluated or presented (Tour.Closed, Result.Closed).
//
// Errors (sentinel, see types.go):
//
//   - ErrTooFewLocations   fewer than two locations.
//   - ErrPopulationTooSmall population size below 3.
//   - ErrBadGenerations    negative generation count.
//   - ErrBadMutation       mutation percentage outside 0..100.
//   - ErrNilRNG            a nil random source was supplied.
//   - ErrDimensionMismatch tour length/shape violations.
//
// Example:
//
//	locs, _ := geo.LoadFile("locations.txt")
//	res, err := ga.Run(locs,
//		ga.WithPopSize(32),
//		ga.WithGenerations(200),
//		ga.WithMutationPercent(10),
//		ga.WithSeed(42),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Names, res.Distance)
package ga
