// Package geo provides the geographic primitives used by the tspga solver:
// named locations, great-circle (Haversine) distances in miles, path sums,
// and a loader for the line-delimited "name,latitude,longitude" format.
//
// Distances follow the classic Haversine formulation with two fixed constants:
//
//   - degrees→radians factor 0.0174533 (a truncated π/180),
//   - Earth mean radius 3961 miles.
//
// Both are part of the observable contract: tour distances printed by the
// solver depend on them bit for bit.
//
// Malformed location lines (missing one of the two commas) are not rejected.
// They produce the zero Location (empty name, 0°,0°), which is accepted lossy
// behavior and will distort any tour passing through it.
package geo
