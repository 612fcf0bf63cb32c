package handlers

import (
	"net/http"

	"daynight-map-service/internal/api/dto"
	"daynight-map-service/internal/services"
)

// TimezoneHandler serves the longitude-derived timezone ruler.
type TimezoneHandler struct{}

// Ruler returns one local-time sample per 15 degrees covering the
// requested longitude band, plus the sub-hour slide offset used to
// animate the ruler.
func (h *TimezoneHandler) Ruler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	west, err := parseFloatParam(q.Get("west"))
	if err != nil || west < -180 || west > 180 {
		writeError(w, r, http.StatusBadRequest, "west must be a number between -180 and 180")
		return
	}

	east, err := parseFloatParam(q.Get("east"))
	if err != nil || east < -180 || east > 180 {
		writeError(w, r, http.StatusBadRequest, "east must be a number between -180 and 180")
		return
	}

	if west > east {
		writeError(w, r, http.StatusBadRequest, "west must not exceed east")
		return
	}

	at, err := parseTimeParam(q.Get("time"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "time must be RFC 3339")
		return
	}

	samples := services.GenerateTimezoneData(west, east, at)

	res := dto.TimezoneRulerResponse{
		SlideOffsetDegrees: services.TimeOffset(at),
		Samples:            make([]dto.TimezoneSampleResponse, 0, len(samples)),
	}
	for _, s := range samples {
		res.Samples = append(res.Samples, dto.TimezoneSampleResponse{
			Longitude:      s.Longitude,
			UTCOffsetHours: s.UTCOffsetHours,
			LocalTime:      s.LocalTime,
			Display:        s.Display,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// LocalTime returns the longitude-derived "HH:MM" for a single longitude.
func (h *TimezoneHandler) LocalTime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	lon, err := parseFloatParam(q.Get("longitude"))
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, r, http.StatusBadRequest, "longitude must be a number between -180 and 180")
		return
	}

	at, err := parseTimeParam(q.Get("time"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "time must be RFC 3339")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LocalTimeResponse{
		Longitude: lon,
		Display:   services.TimeAtLongitude(lon, at),
	})
}
