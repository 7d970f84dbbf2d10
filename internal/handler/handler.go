// Package handler exposes the order-entry engine over HTTP. Every mutation
// endpoint returns the full recomputed cart view, so the screen never has to
// patch derived state locally.
package handler

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
