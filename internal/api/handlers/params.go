package handlers

import (
	"strconv"
	"time"
)

// parseTimeParam parses an RFC 3339 query value, defaulting to the
// current UTC instant when absent.
func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(time.RFC3339, raw)
}

func parseIntParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// parseFloatParam parses a required float query value.
func parseFloatParam(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}
