package geo

// PathDistance sums the segment distances between consecutive points of path,
// in the order given. A path of length L has L-1 segments; paths with fewer
// than two points have distance 0.
//
// The path is not closed implicitly: callers that want the round-trip length
// must append the origin as the last point.
//
// Complexity: O(L).
func PathDistance(path []Point) float64 {
	if len(path) < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 1; i < len(path); i++ {
		sum += Distance(path[i-1], path[i])
	}

	return sum
}
