package geo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseLine converts one "name,latitude,longitude" line into a Location.
//
// The name is everything before the first comma, the latitude sits between the
// first and second comma, and the longitude is the remainder of the line. A
// line missing either comma yields the zero Location and a nil error. A line
// with both commas but a non-numeric coordinate returns ErrBadCoordinate.
func ParseLine(line string) (Location, error) {
	line = strings.TrimRight(line, "\r")

	first := strings.IndexByte(line, ',')
	if first < 0 {
		return Location{}, nil
	}
	rest := line[first+1:]
	second := strings.IndexByte(rest, ',')
	if second < 0 {
		return Location{}, nil
	}

	lat, err := parseCoordinate(rest[:second])
	if err != nil {
		return Location{}, err
	}
	lon, err := parseCoordinate(rest[second+1:])
	if err != nil {
		return Location{}, err
	}

	return Location{
		Name:      line[:first],
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	return v, nil
}

// Load reads one Location per line from r. Line order defines location
// indices; the first line is the tour origin.
func Load(r io.Reader) ([]Location, error) {
	var (
		locs []Location
		sc   = bufio.NewScanner(r)
		n    int
	)
	for sc.Scan() {
		n++
		loc, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		locs = append(locs, loc)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenLocations, err)
	}

	return locs, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenLocations, err)
	}
	defer f.Close()

	return Load(f)
}
