// Package ga_test holds helpers shared across *_test.go files in this package.
package ga_test

import (
	"testing"

	"github.com/katalvlaran/tspga/ga"
	"github.com/katalvlaran/tspga/geo"
)

// scripted is a ga.Source that replays fixed draws and fails the test when
// the script runs dry or an Intn draw is out of range.
type scripted struct {
	t      *testing.T
	ints   []int
	floats []float64
}

var _ ga.Source = (*scripted)(nil)

func (s *scripted) Intn(n int) int {
	s.t.Helper()
	if len(s.ints) == 0 {
		s.t.Fatalf("scripted: unexpected Intn(%d)", n)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted: Intn(%d) scripted out of range value %d", n, v)
	}
	return v
}

func (s *scripted) Float64() float64 {
	s.t.Helper()
	if len(s.floats) == 0 {
		s.t.Fatalf("scripted: unexpected Float64()")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// drained reports whether every scripted draw was consumed.
func (s *scripted) drained() bool {
	return len(s.ints) == 0 && len(s.floats) == 0
}

// westCoast is a 4-location fixture: origin plus three cities.
func westCoast() []geo.Location {
	return []geo.Location{
		{Name: "Los Angeles", Latitude: 34.052235, Longitude: -118.243683},
		{Name: "San Francisco", Latitude: 37.774929, Longitude: -122.419418},
		{Name: "Las Vegas", Latitude: 36.169941, Longitude: -115.139830},
		{Name: "Phoenix", Latitude: 33.448376, Longitude: -112.074036},
	}
}

// usCities is a 9-location fixture for property tests.
func usCities() []geo.Location {
	return []geo.Location{
		{Name: "Los Angeles", Latitude: 34.052235, Longitude: -118.243683},
		{Name: "New York", Latitude: 40.712776, Longitude: -74.005974},
		{Name: "Chicago", Latitude: 41.878113, Longitude: -87.629799},
		{Name: "Houston", Latitude: 29.760427, Longitude: -95.369804},
		{Name: "Phoenix", Latitude: 33.448376, Longitude: -112.074036},
		{Name: "Seattle", Latitude: 47.606209, Longitude: -122.332069},
		{Name: "Denver", Latitude: 39.739236, Longitude: -104.990251},
		{Name: "Miami", Latitude: 25.761680, Longitude: -80.191790},
		{Name: "Boston", Latitude: 42.360082, Longitude: -71.058880},
	}
}

// permutations returns every ordering of xs.
func permutations(xs []int) [][]int {
	if len(xs) <= 1 {
		return [][]int{append([]int(nil), xs...)}
	}
	var out [][]int
	for i := range xs {
		rest := make([]int, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]int{xs[i]}, p...))
		}
	}
	return out
}

// bruteForce returns the closed-tour distance of every origin-fixed tour.
func bruteForce(locs []geo.Location) []float64 {
	rest := make([]int, 0, len(locs)-1)
	for i := 1; i < len(locs); i++ {
		rest = append(rest, i)
	}
	var out []float64
	for _, p := range permutations(rest) {
		out = append(out, ga.Evaluate(locs, append(ga.Tour{ga.Origin}, p...)))
	}
	return out
}
