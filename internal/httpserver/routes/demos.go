package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/handlers"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/mw"
)

func init() { Register(registerDemos) }

// One click on the counter costs an increment plus a load, and the number
// input fires on every keystroke, so those stay unthrottled.
func registerDemos(r chi.Router, d deps.Deps) {
	r.Post("/counter/increment", handlers.CounterIncrement(d))
	r.Get("/numbers", handlers.Numbers(d))
	r.Get("/api/load", handlers.Load(d))

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(mw.RateLimitConfig{
			Burst:      d.RateLimitBurst,
			PerMinute:  d.RateLimitPerMin,
			MaxEntries: d.RateLimitMax,
			TrustProxy: d.TrustProxy,
			Logger:     d.Logger,
		}))

		r.Post("/api/add_todo", handlers.AddTodo(d))
	})
}
