package ga

import "errors"

// Sentinel errors returned by the ga package.
var (
	// ErrTooFewLocations indicates fewer than two locations; no tour exists.
	ErrTooFewLocations = errors.New("ga: at least two locations are required")

	// ErrPopulationTooSmall indicates a population below three members, for
	// which selection and crossover are undefined.
	ErrPopulationTooSmall = errors.New("ga: population size must be at least 3")

	// ErrBadGenerations indicates a negative generation count.
	ErrBadGenerations = errors.New("ga: generation count must be non-negative")

	// ErrBadMutation indicates a mutation percentage outside [0, 100].
	ErrBadMutation = errors.New("ga: mutation chance must be within 0..100 percent")

	// ErrNilRNG indicates that a stochastic operation received a nil source.
	ErrNilRNG = errors.New("ga: random source is nil")

	// ErrDimensionMismatch indicates a tour of the wrong length, a gene out of
	// range, a duplicated gene, or a tour not starting at the origin.
	ErrDimensionMismatch = errors.New("ga: tour dimension mismatch")
)

// Origin is the location index every tour starts and ends at.
const Origin = 0

// Tour is a visiting order: a permutation of [0, N-1] with Tour[0] == Origin.
// The return to the origin is implicit and never stored.
type Tour []int

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// Closed returns a fresh slice of len(t)+1 with the origin repeated at the end.
func (t Tour) Closed() []int {
	out := make([]int, len(t)+1)
	copy(out, t)
	out[len(t)] = Origin
	return out
}

// Population is one generation of tours, owned by the generational loop.
type Population []Tour

// FitnessEntry pairs a population index with its closed-tour distance.
type FitnessEntry struct {
	Index    int
	Distance float64
}

// ParentPair holds the population indices selected to breed one child.
// A and B may be equal.
type ParentPair struct {
	A int
	B int
}

// Phase is a state of the generational loop.
type Phase uint8

// Loop phases, in the order a run visits them.
const (
	PhaseInitializing Phase = iota
	PhaseEvaluating
	PhaseSelecting
	PhaseReproducing
	PhaseFinalizing
	PhaseDone
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseSelecting:
		return "selecting"
	case PhaseReproducing:
		return "reproducing"
	case PhaseFinalizing:
		return "finalizing"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// GenerationStats summarizes the fitness of one evaluated population.
type GenerationStats struct {
	Generation int
	Best       float64
	Mean       float64
	StdDev     float64
}

// Result is the outcome of a run.
type Result struct {
	// Tour is the winning visiting order, without the closing origin.
	Tour Tour

	// Closed is Tour with the origin repeated at the end (len == N+1).
	Closed []int

	// Names are the location names along Closed.
	Names []string

	// Distance is the closed-tour length in miles.
	Distance float64

	// Final is the fitness list of the last population, in population order.
	Final []FitnessEntry

	// History holds one entry per evaluated population, generation 0 first
	// and the final population last.
	History []GenerationStats
}
