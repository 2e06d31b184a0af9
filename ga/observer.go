package ga

// Observer receives the externally visible artifacts of a run, in order:
// OnInitialPopulation once, then per generation OnFitness, OnSelection and
// OnGeneration, and finally OnFinish.
//
// Generations are numbered from 1 for OnGeneration (the population being
// produced) and from 0 for OnFitness/OnSelection (the population being
// evaluated). Observers must not mutate or retain the slices they receive.
type Observer interface {
	OnInitialPopulation(pop Population)
	OnFitness(generation int, fitness []FitnessEntry)
	OnSelection(generation int, pairs []ParentPair)
	OnGeneration(generation int, children Population)
	OnFinish(res Result)
}

// NopObserver ignores every event. Embed it to implement a subset of Observer.
type NopObserver struct{}

func (NopObserver) OnInitialPopulation(Population) {}
func (NopObserver) OnFitness(int, []FitnessEntry) {}
func (NopObserver) OnSelection(int, []ParentPair) {}
func (NopObserver) OnGeneration(int, Population) {}
func (NopObserver) OnFinish(Result) {}

type multiObserver []Observer

// Observers fans every event out to obs in order. Nil entries are skipped.
func Observers(obs ...Observer) Observer {
	out := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}

	return out
}

func (m multiObserver) OnInitialPopulation(pop Population) {
	for _, o := range m {
		o.OnInitialPopulation(pop)
	}
}

func (m multiObserver) OnFitness(generation int, fitness []FitnessEntry) {
	for _, o := range m {
		o.OnFitness(generation, fitness)
	}
}

func (m multiObserver) OnSelection(generation int, pairs []ParentPair) {
	for _, o := range m {
		o.OnSelection(generation, pairs)
	}
}

func (m multiObserver) OnGeneration(generation int, children Population) {
	for _, o := range m {
		o.OnGeneration(generation, children)
	}
}

func (m multiObserver) OnFinish(res Result) {
	for _, o := range m {
		o.OnFinish(res)
	}
}
