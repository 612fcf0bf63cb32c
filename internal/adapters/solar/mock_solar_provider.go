package solar

import (
	"context"
	"time"

	"daynight-map-service/internal/ports"
)

// AltitudeFunc returns a scripted solar altitude in radians.
type AltitudeFunc func(t time.Time, lat, lon float64) float64

// MockProvider serves scripted altitudes (azimuth zero) for tests.
type MockProvider struct {
	Altitude AltitudeFunc
	Err      error
	Calls    int
}

func NewMockProvider(f AltitudeFunc) *MockProvider {
	return &MockProvider{Altitude: f}
}

func (p *MockProvider) Name() string { return "mock" }

func (p *MockProvider) Position(ctx context.Context, t time.Time, lat, lon float64) (ports.SolarPosition, error) {
	p.Calls++
	if p.Err != nil {
		return ports.SolarPosition{}, p.Err
	}
	return ports.SolarPosition{AltitudeRadians: p.Altitude(t, lat, lon)}, nil
}
