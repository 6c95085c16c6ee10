package handlers

import (
	"errors"
	"net/http"

	"github.com/Pesteves2002/tomase-website/internal/deferred"
	"github.com/Pesteves2002/tomase-website/internal/domain"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/htmx"
	"github.com/Pesteves2002/tomase-website/internal/logger"
	"github.com/Pesteves2002/tomase-website/internal/view"
)

// Load answers load(value) after the configured delay. The task is bound to the
// request, so a visitor leaving the page cancels it.
func Load(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := domain.ParseNumber(r.URL.Query().Get("value"))
		if err != nil {
			writeText(d, w, http.StatusBadRequest, err.Error())
			return
		}

		task := domain.ScheduleLoad(r.Context(), value, d.LoadDelay)
		defer task.Cancel()

		result, err := task.Wait(r.Context())
		if err != nil {
			if errors.Is(err, deferred.ErrCanceled) || r.Context().Err() != nil {
				d.Logger.Debug("load canceled",
					logger.Int("value", value),
					logger.Error(err))
				return
			}
			d.Logger.Error("load failed", logger.Int("value", value), logger.Error(err))
			writeText(d, w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}

		htmx.RenderPage(w, r, view.LoadResult(result), nil, http.StatusOK)
	}
}
