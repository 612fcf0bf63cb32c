package dto

import "time"

type SunTimesResponse struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Date      string     `json:"date"`
	Polar     bool       `json:"polar"`
	Sunrise   *time.Time `json:"sunrise"`
	Sunset    *time.Time `json:"sunset"`
	SolarNoon *time.Time `json:"solar_noon"`
}
