package mw

import (
	"net/http"
	"strings"
)

// CacheControl lets browsers keep static assets for a day and forbids caching
// everything else, since pages embed per-request demo state.
func CacheControl(staticPrefixes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range staticPrefixes {
				if strings.HasPrefix(r.URL.Path, p) {
					w.Header().Set("Cache-Control", "public, max-age=86400")
					next.ServeHTTP(w, r)
					return
				}
			}
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			next.ServeHTTP(w, r)
		})
	}
}
