package dto

import "time"

type TerminatorPointResponse struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type TerminatorResponse struct {
	GeneratedAt time.Time                 `json:"generated_at"`
	Resolution  int                       `json:"resolution"`
	Valid       bool                      `json:"valid"`
	Cached      bool                      `json:"cached"`
	Color       [4]uint8                  `json:"color"`
	Points      []TerminatorPointResponse `json:"points"`
}
