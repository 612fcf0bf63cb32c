package solar

import (
	"context"
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/mooncaker816/learnmeeus/v3/solar"
	"github.com/soniakeys/unit"

	"daynight-map-service/internal/ports"
)

// MeeusProvider computes the Sun's position with the full Meeus apparent
// solar coordinates (nutation and aberration included), as a
// higher-precision drop-in for NOAAProvider. Still deterministic,
// in-process and error-free.
type MeeusProvider struct{}

func NewMeeusProvider() *MeeusProvider { return &MeeusProvider{} }

func (p *MeeusProvider) Name() string { return "meeus" }

// Position returns the Sun's altitude and azimuth (radians) at time t for
// an observer at (lat, lon) degrees, azimuth from north, clockwise.
func (p *MeeusProvider) Position(ctx context.Context, t time.Time, lat, lon float64) (ports.SolarPosition, error) {
	jd := julian.TimeToJD(t.UTC())

	ra, dec := solar.ApparentEquatorial(jd)
	st := sidereal.Apparent(jd)

	// Meeus measures geographic longitude positive westward.
	az, alt := coord.EqToHz(ra, dec, unit.AngleFromDeg(lat), unit.AngleFromDeg(-lon), st)

	// EqToHz azimuth is from south, westward; shift to a from-north bearing.
	azRad := math.Mod(az.Rad()+math.Pi, 2*math.Pi)
	if azRad < 0 {
		azRad += 2 * math.Pi
	}

	return ports.SolarPosition{AltitudeRadians: alt.Rad(), AzimuthRadians: azRad}, nil
}
