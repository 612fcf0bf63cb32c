package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"daynight-map-service/internal/adapters/solar"
	"daynight-map-service/internal/api/dto"
)

func equinoxLikeProvider() *solar.MockProvider {
	// Single crossing at the equator on every meridian.
	return solar.NewMockProvider(func(t time.Time, lat, lon float64) float64 {
		return lat * math.Pi / 180
	})
}

func TestTerminatorHandlerGet(t *testing.T) {
	h := &TerminatorHandler{Provider: equinoxLikeProvider(), Model: "mock"}

	req := httptest.NewRequest(http.MethodGet, "/terminator?time=2026-03-20T12:00:00Z&resolution=90&color=%23FF0000", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var res dto.TerminatorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Resolution != 90 {
		t.Errorf("resolution = %d, want 90", res.Resolution)
	}
	if !res.Valid {
		t.Error("expected a valid curve")
	}
	if res.Color != [4]uint8{255, 0, 0, 255} {
		t.Errorf("color = %v, want [255 0 0 255]", res.Color)
	}
	if len(res.Points) == 0 || len(res.Points) > 91 {
		t.Fatalf("len(points) = %d, want 1..91", len(res.Points))
	}
	for i := 1; i < len(res.Points); i++ {
		if res.Points[i].Longitude <= res.Points[i-1].Longitude {
			t.Fatalf("longitudes not strictly increasing at %d", i)
		}
	}
}

func TestTerminatorHandlerMethodNotAllowed(t *testing.T) {
	h := &TerminatorHandler{Provider: equinoxLikeProvider(), Model: "mock"}

	req := httptest.NewRequest(http.MethodPost, "/terminator", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestTerminatorHandlerBadParams(t *testing.T) {
	h := &TerminatorHandler{Provider: equinoxLikeProvider(), Model: "mock"}

	tests := []struct {
		name  string
		query string
	}{
		{name: "bad time", query: "time=yesterday"},
		{name: "resolution not a number", query: "resolution=abc"},
		{name: "resolution too small", query: "resolution=0"},
		{name: "resolution too large", query: "resolution=9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/terminator?"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.Get(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestTerminatorHandlerDefaultColorFallback(t *testing.T) {
	h := &TerminatorHandler{Provider: equinoxLikeProvider(), Model: "mock"}

	req := httptest.NewRequest(http.MethodGet, "/terminator?time=2026-03-20T12:00:00Z&resolution=10&color=bogus", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	var res dto.TerminatorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Color != [4]uint8{215, 106, 11, 255} {
		t.Errorf("color = %v, want default [215 106 11 255]", res.Color)
	}
}
