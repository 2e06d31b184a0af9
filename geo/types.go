package geo

import "errors"

// Sentinel errors returned by the geo package.
var (
	// ErrOpenLocations wraps any failure to open or read a locations source.
	ErrOpenLocations = errors.New("geo: cannot read locations")

	// ErrBadCoordinate indicates a well-formed line whose latitude or longitude
	// is not a decimal number.
	ErrBadCoordinate = errors.New("geo: coordinate is not a number")
)

// Point is a (latitude, longitude) pair in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Location is a named point. Locations are created once at load time and
// never mutated; the one at index 0 is the tour origin.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Point returns the coordinates of l.
func (l Location) Point() Point {
	return Point{Lat: l.Latitude, Lon: l.Longitude}
}

// IsZero reports whether l is the sentinel produced for a malformed line.
func (l Location) IsZero() bool {
	return l == Location{}
}
