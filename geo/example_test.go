package geo_test

import (
	"fmt"

	"github.com/katalvlaran/tspga/geo"
)

// ExampleDistance prints the great-circle distance between Los Angeles and
// New York in miles.
func ExampleDistance() {
	la := geo.Point{Lat: 34.052235, Lon: -118.243683}
	ny := geo.Point{Lat: 40.712776, Lon: -74.005974}
	fmt.Printf("%.2f miles\n", geo.Distance(la, ny))
	// Output: 2446.95 miles
}

// ExamplePathDistance closes the path by repeating the origin at the end.
func ExamplePathDistance() {
	la := geo.Point{Lat: 34.052235, Lon: -118.243683}
	sf := geo.Point{Lat: 37.774929, Lon: -122.419418}
	fmt.Printf("%.2f miles\n", geo.PathDistance([]geo.Point{la, sf, la}))
	// Output: 695.24 miles
}
