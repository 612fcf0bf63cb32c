package api

import (
	"net/http"

	"daynight-map-service/internal/api/handlers"
	"daynight-map-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(provider ports.SolarPositionProvider, cache ports.CurveCache, model string) http.Handler {
	mux := http.NewServeMux()

	terminatorHandler := &handlers.TerminatorHandler{
		Provider: provider,
		Cache:    cache,
		Model:    model,
	}
	tzHandler := &handlers.TimezoneHandler{}
	sunHandler := &handlers.SunTimesHandler{}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/terminator", terminatorHandler.Get)
	mux.HandleFunc("/timezones", tzHandler.Ruler)
	mux.HandleFunc("/localtime", tzHandler.LocalTime)
	mux.HandleFunc("/suntimes", sunHandler.Get)

	return requestIDMiddleware(loggingMiddleware(mux))
}
