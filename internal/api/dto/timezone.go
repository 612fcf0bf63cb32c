package dto

import "time"

type TimezoneSampleResponse struct {
	Longitude      float64   `json:"longitude"`
	UTCOffsetHours float64   `json:"utc_offset_hours"`
	LocalTime      time.Time `json:"local_time"`
	Display        string    `json:"display"`
}

type TimezoneRulerResponse struct {
	SlideOffsetDegrees float64                  `json:"slide_offset_degrees"`
	Samples            []TimezoneSampleResponse `json:"samples"`
}

type LocalTimeResponse struct {
	Longitude float64 `json:"longitude"`
	Display   string  `json:"display"`
}
