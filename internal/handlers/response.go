package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// collection is the uniform envelope for every collection-returning endpoint:
// count always equals len(data), and a bare array is never returned.
type collection[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode JSON response", "error", err)
	}
}

// writeError writes an error response in JSON format
func writeError(w http.ResponseWriter, status int, message string, log *slog.Logger) {
	writeJSON(w, status, map[string]string{"error": message}, log)
}

// writeCollection wraps items in the shared {count, data} envelope. A nil
// slice serializes as an empty data array, not null.
func writeCollection[T any](w http.ResponseWriter, status int, items []T, log *slog.Logger) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, status, collection[T]{Count: len(items), Data: items}, log)
}
