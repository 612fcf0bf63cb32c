package services

import (
	"math"
	"time"

	"daynight-map-service/internal/domain"
)

// degreesPerHour: the Earth rotates 360 degrees in 24 hours.
const degreesPerHour = 15.0

// GenerateTimezoneData produces one sample per UTC-offset hour (every 15
// degrees of longitude) covering the requested band. Candidates run from
// one step below the 15-degree floor of west to one step above the
// ceiling of east, and are kept when within [west-15, east+15], so a
// ruler UI has partial samples visible at its edges while panning.
//
// Offsets are derived purely from longitude (lon/15 hours), not from
// political timezone boundaries.
func GenerateTimezoneData(west, east float64, t time.Time) []domain.TimezoneSample {
	first := degreesPerHour*math.Floor(west/degreesPerHour) - degreesPerHour
	last := degreesPerHour*math.Ceil(east/degreesPerHour) + degreesPerHour

	samples := make([]domain.TimezoneSample, 0, int((last-first)/degreesPerHour)+1)
	for lon := first; lon <= last; lon += degreesPerHour {
		if lon < west-degreesPerHour || lon > east+degreesPerHour {
			continue
		}
		samples = append(samples, timezoneSampleAt(lon, t))
	}

	return samples
}

// TimeAtLongitude returns the longitude-derived local time of t as a
// zero-padded 24-hour "HH:MM" string. No range filtering is applied.
func TimeAtLongitude(lon float64, t time.Time) string {
	return timezoneSampleAt(lon, t).Display
}

// TimeOffset converts the sub-hour component of t (UTC minutes, seconds
// and milliseconds) into a fractional longitude offset in degrees at 15
// degrees per hour. Used to animate a ruler's sub-hour sliding position;
// it never affects sample content. UTC clock fields are read regardless
// of the instant's own location so animation phase is globally
// consistent. The result is in [0, 15) and periodic with period one hour.
func TimeOffset(t time.Time) float64 {
	u := t.UTC()
	ms := u.Minute()*60_000 + u.Second()*1_000 + u.Nanosecond()/1e6
	return float64(ms) * degreesPerHour / 3_600_000
}

func timezoneSampleAt(lon float64, t time.Time) domain.TimezoneSample {
	offset := lon / degreesPerHour
	local := t.UTC().Add(time.Duration(offset * float64(time.Hour)))

	return domain.TimezoneSample{
		Longitude:      lon,
		UTCOffsetHours: offset,
		LocalTime:      local,
		Display:        local.Format("15:04"),
	}
}
