package domain

// Immutable geographic coordinates in degrees (longitude, latitude).
// Longitude wraps conceptually but is never normalized here; callers
// are expected to supply values already in [-180, 180].
type GeoPoint struct {
	Lon float64
	Lat float64
}

// Report whether the point lies within the valid coordinate ranges.
func (p GeoPoint) InRange() bool {
	return p.Lon >= -180 && p.Lon <= 180 && p.Lat >= -90 && p.Lat <= 90
}

// Return coordinates as [lon, lat] for external API compatibility.
func (p GeoPoint) CoordsToList() []float64 { return []float64{p.Lon, p.Lat} }
