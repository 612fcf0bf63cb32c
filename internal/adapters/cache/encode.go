package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"daynight-map-service/internal/domain"
)

// Wire form shared by all cache backends: points as compact [lon, lat]
// pairs, timestamps in RFC 3339.
type curveRecord struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Resolution  int          `json:"resolution"`
	Points      [][2]float64 `json:"points"`
}

func encodeCurve(curve domain.TerminatorCurve) ([]byte, error) {
	rec := curveRecord{
		GeneratedAt: curve.GeneratedAt,
		Resolution:  curve.Resolution,
		Points:      make([][2]float64, 0, len(curve.Points)),
	}
	for _, p := range curve.Points {
		rec.Points = append(rec.Points, [2]float64{p.Lon, p.Lat})
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode curve: %w", err)
	}
	return b, nil
}

func decodeCurve(b []byte) (domain.TerminatorCurve, error) {
	var rec curveRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.TerminatorCurve{}, fmt.Errorf("decode curve: %w", err)
	}

	curve := domain.TerminatorCurve{
		GeneratedAt: rec.GeneratedAt,
		Resolution:  rec.Resolution,
		Points:      make([]domain.TerminatorPoint, 0, len(rec.Points)),
	}
	for _, p := range rec.Points {
		curve.Points = append(curve.Points, domain.TerminatorPoint{
			GeoPoint: domain.GeoPoint{Lon: p[0], Lat: p[1]},
		})
	}
	return curve, nil
}
