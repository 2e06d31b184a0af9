package ga

import "github.com/rs/zerolog"

// Options configures a run.
//
// PopSize         – members per generation (≥ 3).
// Generations     – number of evaluate→select→reproduce cycles (≥ 0).
// MutationPercent – chance in percent (0..100) that a child gets a swap mutation.
// Seed            – seed of the run's single random generator.
// Observer        – receives populations, fitness lists and the solution.
// Logger          – structured logger; per-generation stats are logged at debug level.
type Options struct {
	PopSize         int
	Generations     int
	MutationPercent int
	Seed            int64
	Observer        Observer
	Logger          zerolog.Logger
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithPopSize sets the population size.
func WithPopSize(n int) Option {
	return func(o *Options) {
		o.PopSize = n
	}
}

// WithGenerations sets the number of generations.
func WithGenerations(n int) Option {
	return func(o *Options) {
		o.Generations = n
	}
}

// WithMutationPercent sets the mutation chance as an integer percentage.
func WithMutationPercent(p int) Option {
	return func(o *Options) {
		o.MutationPercent = p
	}
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithObserver installs obs. A nil observer is replaced by NopObserver.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			obs = NopObserver{}
		}
		o.Observer = obs
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults applied before functional options:
//   - PopSize:         32
//   - Generations:     100
//   - MutationPercent: 10
//   - Seed:            1
//   - Observer:        NopObserver{}
//   - Logger:          zerolog.Nop()
func DefaultOptions() Options {
	return Options{
		PopSize:         32,
		Generations:     100,
		MutationPercent: 10,
		Seed:            1,
		Observer:        NopObserver{},
		Logger:          zerolog.Nop(),
	}
}

// MutationChance converts MutationPercent into a probability in [0, 1].
func (o Options) MutationChance() float64 {
	return float64(o.MutationPercent) / 100.0
}

// Validate checks the option ranges independently of the input locations.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.PopSize < 3 {
		return ErrPopulationTooSmall
	}
	if o.Generations < 0 {
		return ErrBadGenerations
	}
	if o.MutationPercent < 0 || o.MutationPercent > 100 {
		return ErrBadMutation
	}

	return nil
}
