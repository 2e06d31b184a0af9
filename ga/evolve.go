// Package ga - the generational loop.
//
// The loop is an explicit state machine (see Phase). Each state handler does
// one unit of work and sets the next phase; run drives handlers until
// PhaseDone. The population is replaced wholesale in PhaseReproducing, and
// every child is a fresh slice, so nothing is shared across generations.
package ga

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tspga/geo"
)

// engine carries the state of one run.
type engine struct {
	locs     []geo.Location
	opts     Options
	rng      *rand.Rand
	mutation float64
	log      zerolog.Logger

	phase      Phase
	generation int // generations completed so far
	pop        Population
	fitness    []FitnessEntry
	pairs      []ParentPair
	history    []GenerationStats
	result     Result
	err        error
}

// Run evolves tours over locs and returns the best tour of the final
// population. Location 0 is the fixed origin.
//
// Errors: ErrTooFewLocations, ErrPopulationTooSmall, ErrBadGenerations,
// ErrBadMutation; all are reported before any random draw. ErrDimensionMismatch
// means a generation broke the tour invariant and the run was abandoned.
//
// Complexity: O(G·P·(N + P)) for G generations, population P and N locations.
func Run(locs []geo.Location, opts ...Option) (Result, error) {
	o, err := resolve(len(locs), opts)
	if err != nil {
		return Result{}, err
	}

	e := &engine{
		locs:     locs,
		opts:     o,
		rng:      NewRNG(o.Seed),
		mutation: o.MutationChance(),
		log:      o.Logger.With().Str("component", "ga").Logger(),
		phase:    PhaseInitializing,
	}
	if err = e.run(); err != nil {
		return Result{}, err
	}

	return e.result, nil
}

// Validate reports the error Run would return for locs and opts before doing
// any work, so callers can reject a run without side effects.
func Validate(locs []geo.Location, opts ...Option) error {
	_, err := resolve(len(locs), opts)

	return err
}

// resolve applies opts over DefaultOptions and checks them against numLocs.
func resolve(numLocs int, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	if numLocs < 2 {
		return Options{}, ErrTooFewLocations
	}

	return o, nil
}

func (e *engine) run() error {
	for e.phase != PhaseDone && e.err == nil {
		switch e.phase {
		case PhaseInitializing:
			e.initialize()
		case PhaseEvaluating:
			e.evaluate()
		case PhaseSelecting:
			e.selectParents()
		case PhaseReproducing:
			e.reproduce()
		case PhaseFinalizing:
			e.finalize()
		}
	}

	return e.err
}

func (e *engine) initialize() {
	e.pop, e.err = InitPopulation(e.opts.PopSize, len(e.locs), e.rng)
	if e.err != nil {
		return
	}
	if e.err = ValidatePopulation(e.pop, len(e.locs)); e.err != nil {
		return
	}
	e.opts.Observer.OnInitialPopulation(e.pop)
	e.log.Debug().
		Int("pop_size", e.opts.PopSize).
		Int("locations", len(e.locs)).
		Int64("seed", e.opts.Seed).
		Msg("initial population built")

	e.phase = PhaseEvaluating
	if e.opts.Generations == 0 {
		e.phase = PhaseFinalizing
	}
}

func (e *engine) evaluate() {
	e.fitness = EvaluatePopulation(e.locs, e.pop)
	e.opts.Observer.OnFitness(e.generation, e.fitness)
	e.record()
	e.phase = PhaseSelecting
}

// record appends the stats of the current fitness list to the history.
func (e *engine) record() {
	s := Summarize(e.generation, e.fitness)
	e.history = append(e.history, s)
	e.log.Debug().
		Int("generation", s.Generation).
		Float64("best", s.Best).
		Float64("mean", s.Mean).
		Float64("stddev", s.StdDev).
		Msg("population evaluated")
}

func (e *engine) selectParents() {
	probs := Probabilities(e.fitness)
	e.pairs, e.err = SelectParents(probs, e.opts.PopSize, e.rng)
	if e.err != nil {
		return
	}
	e.opts.Observer.OnSelection(e.generation, e.pairs)
	e.phase = PhaseReproducing
}

func (e *engine) reproduce() {
	children := make(Population, len(e.pairs))
	for i, p := range e.pairs {
		children[i], e.err = Cross(e.pop[p.A], e.pop[p.B], e.mutation, e.rng)
		if e.err != nil {
			return
		}
	}
	if e.err = ValidatePopulation(children, len(e.locs)); e.err != nil {
		return
	}
	e.pop = children
	e.generation++
	e.opts.Observer.OnGeneration(e.generation, e.pop)

	e.phase = PhaseEvaluating
	if e.generation == e.opts.Generations {
		e.phase = PhaseFinalizing
	}
}

func (e *engine) finalize() {
	e.fitness = EvaluatePopulation(e.locs, e.pop)
	e.record()

	best := Rank(e.fitness)[0]
	tour := e.pop[best.Index].Clone()
	closed := tour.Closed()
	names := make([]string, len(closed))
	for i, idx := range closed {
		names[i] = e.locs[idx].Name
	}

	e.result = Result{
		Tour:     tour,
		Closed:   closed,
		Names:    names,
		Distance: best.Distance,
		Final:    e.fitness,
		History:  e.history,
	}
	e.opts.Observer.OnFinish(e.result)
	e.log.Info().
		Int("generations", e.opts.Generations).
		Float64("distance", best.Distance).
		Ints("tour", closed).
		Msg("evolution finished")

	e.phase = PhaseDone
}
