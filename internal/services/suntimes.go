package services

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunTimes returns sunrise, sunset and apparent solar noon (the midpoint
// of rise and set) in UTC for the calendar date of `date` at (lat, lon).
// ok is false during polar day or polar night, when no rise/set exists.
func SunTimes(date time.Time, lat, lon float64) (rise, set, noon time.Time, ok bool) {
	y, m, d := date.UTC().Date()

	rise, set = sunrise.SunriseSunset(lat, lon, y, m, d)
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, time.Time{}, false
	}

	noon = rise.Add(set.Sub(rise) / 2)
	return rise, set, noon, true
}
