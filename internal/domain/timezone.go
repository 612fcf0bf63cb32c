package domain

import "time"

// Local-time annotation for one longitude on a timezone ruler.
// The UTC offset is derived purely from longitude (15 degrees per hour),
// ignoring political timezone boundaries.
type TimezoneSample struct {
	Longitude      float64
	UTCOffsetHours float64
	LocalTime      time.Time
	Display        string // zero-padded 24-hour "HH:MM"
}
