package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON sends v as the JSON response body with the given status.
// Encode failures are logged; at that point headers are already out.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// writeError sends the uniform {"error": msg} payload all handlers use.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
