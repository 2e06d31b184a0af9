package ga_test

import (
	"fmt"

	"github.com/katalvlaran/tspga/ga"
)

// ExampleSplice keeps the donor prefix [0..k] and fills the rest from the
// other parent in its own order.
func ExampleSplice() {
	donor := ga.Tour{0, 3, 1, 4, 2}
	other := ga.Tour{0, 1, 2, 3, 4}
	child, err := ga.Splice(donor, other, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(child, child.Closed())
	// Output: [0 3 1 2 4] [0 3 1 2 4 0]
}

// ExampleProbabilities shows the elitism boosts for a population of four:
// the two shortest tours (indices 1 and 2) get six times the base weight.
func ExampleProbabilities() {
	fitness := []ga.FitnessEntry{
		{Index: 0, Distance: 10},
		{Index: 1, Distance: 5},
		{Index: 2, Distance: 7},
		{Index: 3, Distance: 20},
	}
	for i, p := range ga.Probabilities(fitness) {
		fmt.Printf("%d: %.4f\n", i, p)
	}
	// Output:
	// 0: 0.0714
	// 1: 0.4286
	// 2: 0.4286
	// 3: 0.0714
}
