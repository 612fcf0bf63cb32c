package services

import (
	"context"
	"fmt"
	"time"

	"daynight-map-service/internal/domain"
	"daynight-map-service/internal/ports"
)

// DefaultResolution is one longitude sample per degree.
const DefaultResolution = 360

// GenerateTerminator samples resolution+1 longitudes evenly across
// [-180, 180] inclusive and locates the day/night boundary at each one.
//
// Longitudes with no resolvable crossing are silently omitted, so the
// curve may be shorter than resolution+1; a visually complete curve
// missing a few points beats aborting the whole render. Output ordering
// matches sampling order (strictly increasing longitude). Only a solar
// provider failure makes the operation as a whole fail.
func GenerateTerminator(
	ctx context.Context,
	t time.Time,
	resolution int,
	provider ports.SolarPositionProvider,
) (domain.TerminatorCurve, error) {
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	points := make([]domain.TerminatorPoint, 0, resolution+1)

	for i := 0; i <= resolution; i++ {
		// Dividing per sample keeps both endpoints exact; accumulating a
		// step of 360/resolution overshoots 180 by an ulp whenever
		// resolution does not divide 360.
		lon := -180.0 + 360.0*float64(i)/float64(resolution)

		lat, ok, err := LocateTerminator(ctx, lon, t, provider)
		if err != nil {
			return domain.TerminatorCurve{}, fmt.Errorf("generate terminator: %w", err)
		}
		if !ok {
			continue
		}

		points = append(points, domain.TerminatorPoint{
			GeoPoint: domain.GeoPoint{Lon: lon, Lat: lat},
		})
	}

	return domain.TerminatorCurve{
		GeneratedAt: t.UTC(),
		Resolution:  resolution,
		Points:      points,
	}, nil
}

// CurveCacheKey buckets the instant to the minute: the terminator moves
// about 0.25 degrees of longitude per minute, the same order as the
// locator tolerance, so curves within a minute are visually identical.
func CurveCacheKey(t time.Time, resolution int, model string) string {
	return fmt.Sprintf("%s|%d|%s", t.UTC().Truncate(time.Minute).Format(time.RFC3339), resolution, model)
}
