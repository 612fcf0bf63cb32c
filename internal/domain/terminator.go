package domain

import "time"

// A point on the day/night boundary for a given instant.
// Produced only by the terminator locator; never mutated after creation.
type TerminatorPoint struct {
	GeoPoint
}

// The discretized day/night boundary at GeneratedAt, ordered by strictly
// increasing sample longitude (one sample per requested longitude).
// May hold fewer than Resolution+1 points when some longitudes had no
// resolvable horizon crossing.
type TerminatorCurve struct {
	GeneratedAt time.Time
	Resolution  int
	Points      []TerminatorPoint
}
