package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON body shape shared by every API response.
type Envelope struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	Data            any    `json:"data,omitempty"`
	NeedsActivation bool   `json:"needsActivation,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes an envelope carrying only a message. Success is
// derived from the status code.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, Envelope{
		Success: code < http.StatusBadRequest,
		Message: msg,
	})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
