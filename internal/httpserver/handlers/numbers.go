package handlers

import (
	"net/http"

	"github.com/Pesteves2002/tomase-website/internal/domain"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/htmx"
	"github.com/Pesteves2002/tomase-website/internal/view"
)

// Numbers parses ?value= and shows the value or the error panel. htmx gets only
// the output block; a plain form submit gets the whole home page.
func Numbers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := r.URL.Query().Get("value")
		result := view.ParseNumberInput(input)

		if htmx.IsHTMXRequest(r) {
			htmx.RenderPage(w, r, view.NumberOutput(result), nil, http.StatusOK)
			return
		}

		page := view.HomePage(homeData(d, domain.NewCounter(d.InitialCount), input))
		htmx.RenderPage(w, r, nil, layout(d, page), http.StatusOK)
	}
}
