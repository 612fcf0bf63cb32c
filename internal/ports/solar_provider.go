package ports

import (
	"context"
	"time"
)

// Solar altitude and azimuth for one (time, coordinate) query, in radians.
// Readings are ephemeral: consumed immediately and never persisted.
type SolarPosition struct {
	AltitudeRadians float64
	AzimuthRadians  float64
}

// Contract for computing the Sun's apparent position.
type SolarPositionProvider interface {
	// Return the Sun's position at time t as seen from (lat, lon) in degrees.
	// Must be a deterministic, side-effect-free function of its inputs.
	Position(ctx context.Context, t time.Time, lat, lon float64) (SolarPosition, error)
}
