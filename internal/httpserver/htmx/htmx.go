// Package htmx serves pages either whole or as the fragment htmx swaps in.
package htmx

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeader is set to "true" by htmx on every request it issues.
const RequestHeader = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// RenderPage renders fragment for htmx requests and full for everything else.
// If fragment is nil, full is used for both paths, and the other way round.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment, full templ.Component, status int) {
	target := full
	if (IsHTMXRequest(r) && fragment != nil) || target == nil {
		target = fragment
	}
	if target == nil {
		return
	}
	if status == 0 {
		status = http.StatusOK
	}

	// Both variants live under the same URL.
	w.Header().Add("Vary", RequestHeader)
	templ.Handler(target, templ.WithStatus(status)).ServeHTTP(w, r)
}
