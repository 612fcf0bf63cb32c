package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"daynight-map-service/internal/api/dto"
)

func TestTimezoneHandlerRuler(t *testing.T) {
	h := &TimezoneHandler{}

	req := httptest.NewRequest(http.MethodGet, "/timezones?west=-10&east=10&time=2026-03-20T12:30:00Z", nil)
	rec := httptest.NewRecorder()

	h.Ruler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var res dto.TimezoneRulerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.SlideOffsetDegrees != 7.5 {
		t.Errorf("slide offset = %v, want 7.5 at half past", res.SlideOffsetDegrees)
	}

	got := map[float64]string{}
	for _, s := range res.Samples {
		got[s.Longitude] = s.Display
	}
	if got[0] != "12:30" {
		t.Errorf("display at 0 = %q, want 12:30", got[0])
	}
	if got[15] != "13:30" {
		t.Errorf("display at 15 = %q, want 13:30", got[15])
	}
	if got[-15] != "11:30" {
		t.Errorf("display at -15 = %q, want 11:30", got[-15])
	}
}

func TestTimezoneHandlerRulerBadBand(t *testing.T) {
	h := &TimezoneHandler{}

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing west", query: "east=10"},
		{name: "west beyond range", query: "west=-200&east=10"},
		{name: "west exceeds east", query: "west=20&east=10"},
		{name: "east not a number", query: "west=0&east=ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/timezones?"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.Ruler(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestTimezoneHandlerLocalTime(t *testing.T) {
	h := &TimezoneHandler{}

	req := httptest.NewRequest(http.MethodGet, "/localtime?longitude=-15&time=2026-03-20T12:30:00Z", nil)
	rec := httptest.NewRecorder()

	h.LocalTime(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var res dto.LocalTimeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Display != "11:30" {
		t.Errorf("display = %q, want 11:30", res.Display)
	}
}
