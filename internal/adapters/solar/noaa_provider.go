package solar

import (
	"context"
	"math"
	"time"

	"daynight-map-service/internal/ports"
)

// j2000 is the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// NOAAProvider computes the Sun's position with a simplified NOAA/Meeus
// style low-precision model: geocentric RA/Dec from the mean anomaly and
// mean longitude with the equation of center, then a sidereal-time hour
// angle for the topocentric altitude and azimuth. Accuracy is at the
// arcminute level, well inside the curve tolerance.
//
// It runs entirely in-process and never returns an error.
type NOAAProvider struct{}

func NewNOAAProvider() *NOAAProvider { return &NOAAProvider{} }

// Name identifies the model for cache keys and logs.
func (p *NOAAProvider) Name() string { return "noaa" }

// Position returns the Sun's altitude and azimuth (radians) at time t for
// an observer at (lat, lon) degrees. Azimuth is measured from north,
// clockwise, in [0, 2*pi).
func (p *NOAAProvider) Position(ctx context.Context, t time.Time, lat, lon float64) (ports.SolarPosition, error) {
	d := daysSinceJ2000(t)

	// Mean anomaly and mean longitude of the Sun (degrees -> radians).
	g := deg2rad(357.529 + 0.98560028*d)
	q := deg2rad(280.459 + 0.98564736*d)

	// Ecliptic longitude with the equation of center.
	L := q + deg2rad(1.915)*math.Sin(g) + deg2rad(0.020)*math.Sin(2*g)

	// Obliquity of the ecliptic.
	eps := deg2rad(23.439 - 0.00000036*d)

	// Equatorial coordinates.
	ra := math.Atan2(math.Cos(eps)*math.Sin(L), math.Cos(L))
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(math.Sin(eps) * math.Sin(L))

	// Local sidereal time and hour angle.
	gmst := 280.46061837 + 360.98564736629*d
	lst := deg2rad(normalize360(gmst + lon))
	H := lst - ra
	for H > math.Pi {
		H -= 2 * math.Pi
	}
	for H < -math.Pi {
		H += 2 * math.Pi
	}

	latRad := deg2rad(lat)

	sinAlt := math.Sin(latRad)*math.Sin(dec) + math.Cos(latRad)*math.Cos(dec)*math.Cos(H)
	alt := math.Asin(sinAlt)

	// Azimuth from south, westward; shifted to a from-north bearing.
	az := math.Atan2(math.Sin(H), math.Cos(H)*math.Sin(latRad)-math.Tan(dec)*math.Cos(latRad))
	az = math.Mod(az+math.Pi, 2*math.Pi)
	if az < 0 {
		az += 2 * math.Pi
	}

	return ports.SolarPosition{AltitudeRadians: alt, AzimuthRadians: az}, nil
}

// daysSinceJ2000 returns UTC days since the J2000.0 epoch. A TT-based
// Julian day would be more precise; this is fine at visual fidelity.
func daysSinceJ2000(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24.0
}

func deg2rad(d float64) float64 { return d * math.Pi / 180.0 }

func normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}
