package handlers

import (
	"net/http"
	"strconv"

	"github.com/Pesteves2002/tomase-website/internal/domain"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/htmx"
	"github.com/Pesteves2002/tomase-website/internal/logger"
	"github.com/Pesteves2002/tomase-website/internal/view"
)

// CounterIncrement takes the count the page currently shows and answers with the
// panel for count+1. Without htmx the browser is sent back to the home page.
func CounterIncrement(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := domain.ParseNumber(r.FormValue("count"))
		if err != nil {
			d.Logger.Debug("bad counter form", logger.Error(err))
			writeText(d, w, http.StatusBadRequest, err.Error())
			return
		}

		c := domain.NewCounter(current)
		c.OnChange(func(v int) {
			d.Logger.Debug("counter changed",
				logger.Int("count", v),
				logger.Int64("doubled", domain.Doubled(v)),
				logger.Bool("odd", domain.IsOdd(v)))
		})
		next := c.Increment()

		if !htmx.IsHTMXRequest(r) {
			http.Redirect(w, r, "/?count="+strconv.Itoa(next), http.StatusSeeOther)
			return
		}
		htmx.RenderPage(w, r, view.CounterPanel(view.NewCounterData(c)), nil, http.StatusOK)
	}
}
