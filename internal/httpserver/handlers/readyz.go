package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
	Links int  `json:"links"`
}

// Readyz is ready once the link directory has content to serve.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := d.MemoryIndex.Count()
		status := http.StatusOK
		if count == 0 {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready: count > 0,
			Links: count,
		})
	}
}
