package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"daynight-map-service/internal/adapters/solar"
)

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// linearCrossing builds an altitude function with a single zero crossing
// at crossLat. Positive slope puts the day side at high latitudes.
func linearCrossing(crossLat, slope float64) solar.AltitudeFunc {
	return func(t time.Time, lat, lon float64) float64 {
		return deg2rad(slope * (lat - crossLat))
	}
}

func TestLocateTerminatorConvergesDayNorth(t *testing.T) {
	provider := solar.NewMockProvider(linearCrossing(20, 1))
	at := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	lat, ok, err := LocateTerminator(context.Background(), 0, at, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected crossing to resolve")
	}
	if math.Abs(lat-20) > terminatorTolerance {
		t.Errorf("lat = %.4f, want within %.1f of 20", lat, terminatorTolerance)
	}
}

func TestLocateTerminatorConvergesDaySouth(t *testing.T) {
	provider := solar.NewMockProvider(linearCrossing(-35.5, -1))
	at := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)

	lat, ok, err := LocateTerminator(context.Background(), 90, at, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected crossing to resolve")
	}
	if math.Abs(lat-(-35.5)) > terminatorTolerance {
		t.Errorf("lat = %.4f, want within %.1f of -35.5", lat, terminatorTolerance)
	}
}

func TestLocateTerminatorNoCrossingUnresolved(t *testing.T) {
	// Polar-night style meridian: the Sun never rises anywhere on it.
	provider := solar.NewMockProvider(func(time.Time, float64, float64) float64 {
		return deg2rad(-5)
	})
	at := time.Date(2026, 12, 21, 0, 0, 0, 0, time.UTC)

	_, ok, err := LocateTerminator(context.Background(), 0, at, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected unresolved for a meridian with no sign change")
	}
	if provider.Calls != 2 {
		t.Errorf("calls = %d, want 2 (endpoint samples only)", provider.Calls)
	}
}

func TestLocateTerminatorBoundedQueries(t *testing.T) {
	provider := solar.NewMockProvider(linearCrossing(0, 1))
	at := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	if _, _, err := LocateTerminator(context.Background(), 0, at, provider); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.Calls > maxLocateIterations+2 {
		t.Errorf("calls = %d, want <= %d", provider.Calls, maxLocateIterations+2)
	}
}

func TestLocateTerminatorPropagatesProviderError(t *testing.T) {
	provider := solar.NewMockProvider(nil)
	provider.Err = errors.New("ephemeris unavailable")
	at := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	_, _, err := LocateTerminator(context.Background(), 0, at, provider)
	if err == nil {
		t.Fatal("expected provider error to propagate")
	}
	if !errors.Is(err, provider.Err) {
		t.Errorf("error %v does not wrap provider error", err)
	}
}
