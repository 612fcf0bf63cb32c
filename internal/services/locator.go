package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"daynight-map-service/internal/ports"
)

const (
	latMin = -90.0
	latMax = 90.0

	// terminatorTolerance is the angular tolerance (degrees) at which the
	// latitude search stops. Visual-fidelity accuracy, not ephemeris-grade.
	terminatorTolerance = 0.1

	// maxLocateIterations caps the search so that pathological inputs
	// (polar day/night near solstice) still finish in bounded time.
	maxLocateIterations = 30
)

// LocateTerminator finds the latitude at which solar altitude crosses zero
// for the given longitude and instant, by bisecting latitude over [-90, 90].
//
// Altitude must bracket a sign change across the interval: both endpoints
// are sampled first, and a longitude with no crossing in range (all-day or
// all-night meridians) is classified unresolved (ok=false) rather than
// accepted as a spurious midpoint. The search keeps whichever half-interval
// still brackets the change, so it converges for both day-north and
// day-south orientations.
//
// Provider errors propagate; there is no fallback solar model.
func LocateTerminator(
	ctx context.Context,
	lon float64,
	t time.Time,
	provider ports.SolarPositionProvider,
) (lat float64, ok bool, err error) {
	lo, hi := latMin, latMax

	altLo, err := altitudeDegrees(ctx, provider, t, lo, lon)
	if err != nil {
		return 0, false, fmt.Errorf("locate terminator: lon=%.3f lat=%.1f: %w", lon, lo, err)
	}
	altHi, err := altitudeDegrees(ctx, provider, t, hi, lon)
	if err != nil {
		return 0, false, fmt.Errorf("locate terminator: lon=%.3f lat=%.1f: %w", lon, hi, err)
	}

	// No sign change in range means no horizon crossing on this meridian.
	if (altLo > 0) == (altHi > 0) {
		return 0, false, nil
	}

	for i := 0; i < maxLocateIterations && hi-lo > terminatorTolerance; i++ {
		mid := (lo + hi) / 2
		altMid, err := altitudeDegrees(ctx, provider, t, mid, lon)
		if err != nil {
			return 0, false, fmt.Errorf("locate terminator: lon=%.3f lat=%.3f: %w", lon, mid, err)
		}

		if (altMid > 0) == (altLo > 0) {
			lo, altLo = mid, altMid
		} else {
			hi = mid
		}
	}

	lat = (lo + hi) / 2

	// The search cannot guarantee a sane result from a degenerate oracle.
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < latMin || lat > latMax {
		return 0, false, nil
	}

	return lat, true, nil
}

func altitudeDegrees(
	ctx context.Context,
	provider ports.SolarPositionProvider,
	t time.Time,
	lat, lon float64,
) (float64, error) {
	pos, err := provider.Position(ctx, t, lat, lon)
	if err != nil {
		return 0, err
	}
	return pos.AltitudeRadians * 180 / math.Pi, nil
}
