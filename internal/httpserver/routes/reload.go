package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/handlers"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/mw"
)

// reloadsPerMinute caps manual reloads per client IP.
const reloadsPerMinute = 6

func init() { Register(registerReload) }

func registerReload(r chi.Router, d deps.Deps) {
	r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		httprate.LimitByIP(reloadsPerMinute, time.Minute),
	).Post("/reload", handlers.Reload(d))
}
