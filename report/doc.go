// Package report writes the per-run log of a ga run.
//
// Writer implements ga.Observer and renders the events as plain text:
//
//	INITIAL POPULATION:
//	0,2,1,3
//	FITNESS:
//	0:1234.57
//	SELECTED PAIRS:
//	(1,0)
//	GENERATION: 1
//	0,1,3,2
//	...
//	FITNESS:
//	SOLUTION:
//	<origin name>
//	...
//	<origin name>
//	DISTANCE: 1234.57 miles
//
// Distances are printed with six significant digits. Tours are printed
// without the closing origin; the solution lists it twice.
package report
