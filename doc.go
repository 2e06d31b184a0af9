// Package tspga evolves short closed tours over named geographic locations
// with a generational genetic algorithm.
//
// Layout:
//
//	geo/        locations, Haversine distance in miles, path sums, file loader
//	ga/         tours, population init, selection, crossover, mutation, loop
//	report/     plain-text run log (ga.Observer)
//	config/     viper-backed run configuration
//	cmd/tspga/  command-line entry point
//
// Quick start:
//
//	tspga locations.txt 32 200 10 42 --log-file run.log
//
// Every run is reproducible: one seeded generator feeds every random draw, in
// a fixed order, so equal inputs give identical logs.
package tspga
