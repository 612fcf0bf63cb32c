package handlers

import (
	"net/http"
	"time"

	"daynight-map-service/internal/api/dto"
	"daynight-map-service/internal/services"
)

// SunTimesHandler serves sunrise/sunset/solar-noon lookups for a point.
type SunTimesHandler struct{}

func (h *SunTimesHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	lat, err := parseFloatParam(q.Get("lat"))
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, r, http.StatusBadRequest, "lat must be a number between -90 and 90")
		return
	}

	lon, err := parseFloatParam(q.Get("lon"))
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, r, http.StatusBadRequest, "lon must be a number between -180 and 180")
		return
	}

	date := time.Now().UTC()
	if raw := q.Get("date"); raw != "" {
		date, err = time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
	}

	res := dto.SunTimesResponse{
		Latitude:  lat,
		Longitude: lon,
		Date:      date.Format("2006-01-02"),
	}

	rise, set, noon, ok := services.SunTimes(date, lat, lon)
	if !ok {
		// Polar day or night: no rise/set on this date.
		res.Polar = true
		writeJSON(w, r, http.StatusOK, res)
		return
	}

	res.Sunrise, res.Sunset, res.SolarNoon = &rise, &set, &noon
	writeJSON(w, r, http.StatusOK, res)
}
