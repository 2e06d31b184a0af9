package ga

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tspga/geo"
)

// Evaluate returns the closed-tour distance of t over locs: the path through
// t's locations followed by the return leg to the origin.
// Requires every index of t to be within locs.
//
// Complexity: O(len(t)).
func Evaluate(locs []geo.Location, t Tour) float64 {
	path := make([]geo.Point, 0, len(t)+1)
	for _, idx := range t {
		path = append(path, locs[idx].Point())
	}
	path = append(path, locs[Origin].Point())

	return geo.PathDistance(path)
}

// EvaluatePopulation scores every member of pop, in population order.
//
// Complexity: O(len(pop)·N).
func EvaluatePopulation(locs []geo.Location, pop Population) []FitnessEntry {
	out := make([]FitnessEntry, len(pop))
	for i, t := range pop {
		out[i] = FitnessEntry{Index: i, Distance: Evaluate(locs, t)}
	}

	return out
}

// Rank returns a copy of fitness sorted by ascending distance. The sort is
// stable, so ties keep population order.
//
// Complexity: O(n log n).
func Rank(fitness []FitnessEntry) []FitnessEntry {
	ranked := make([]FitnessEntry, len(fitness))
	copy(ranked, fitness)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	return ranked
}

// Summarize computes best, mean and standard deviation of a fitness list.
// An empty list yields zero statistics.
func Summarize(generation int, fitness []FitnessEntry) GenerationStats {
	s := GenerationStats{Generation: generation}
	if len(fitness) == 0 {
		return s
	}

	d := make([]float64, len(fitness))
	for i, f := range fitness {
		d[i] = f.Distance
	}
	s.Best = floats.Min(d)
	if len(d) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(d, nil)
	} else {
		s.Mean = d[0]
	}

	return s
}
