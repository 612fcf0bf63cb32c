package handlers

import (
	"log"
	"net/http"

	"daynight-map-service/internal/api/dto"
	"daynight-map-service/internal/domain"
	"daynight-map-service/internal/ports"
	"daynight-map-service/internal/render"
	"daynight-map-service/internal/services"
)

// TerminatorHandler serves the day/night boundary curve.
type TerminatorHandler struct {
	Provider ports.SolarPositionProvider
	Cache    ports.CurveCache // nil disables caching
	Model    string           // solar model name, part of cache keys
}

// Get computes (or serves from cache) the terminator curve for a given
// instant and resolution. Cache failures degrade to recomputation; they
// are logged but never fail the request.
func (h *TerminatorHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	at, err := parseTimeParam(q.Get("time"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "time must be RFC 3339")
		return
	}

	resolution, err := parseIntParam(q.Get("resolution"), services.DefaultResolution)
	if err != nil || resolution < 1 || resolution > 1440 {
		writeError(w, r, http.StatusBadRequest, "resolution must be an integer between 1 and 1440")
		return
	}

	color := render.ParseColor(q.Get("color"))

	key := services.CurveCacheKey(at, resolution, h.Model)

	if h.Cache != nil {
		curve, ok, err := h.Cache.Get(r.Context(), key)
		if err != nil {
			log.Printf("curve cache get failed: key=%q err=%v", key, err)
		} else if ok {
			writeJSON(w, r, http.StatusOK, terminatorResponse(curve, color, true))
			return
		}
	}

	curve, err := services.GenerateTerminator(r.Context(), at, resolution, h.Provider)
	if err != nil {
		log.Printf("generate terminator failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	valid := services.ValidateCurve(curve)
	if valid && h.Cache != nil {
		if err := h.Cache.Put(r.Context(), key, curve); err != nil {
			log.Printf("curve cache put failed: key=%q err=%v", key, err)
		}
	}

	res := terminatorResponse(curve, color, false)
	res.Valid = valid
	writeJSON(w, r, http.StatusOK, res)
}

func terminatorResponse(curve domain.TerminatorCurve, color render.RGBA, cached bool) dto.TerminatorResponse {
	points := make([]dto.TerminatorPointResponse, 0, len(curve.Points))
	for _, p := range curve.Points {
		points = append(points, dto.TerminatorPointResponse{
			Longitude: p.Lon,
			Latitude:  p.Lat,
		})
	}

	return dto.TerminatorResponse{
		GeneratedAt: curve.GeneratedAt,
		Resolution:  curve.Resolution,
		Valid:       true,
		Cached:      cached,
		Color:       [4]uint8{color.R, color.G, color.B, color.A},
		Points:      points,
	}
}
