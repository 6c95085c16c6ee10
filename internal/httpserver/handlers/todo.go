package handlers

import (
	"net/http"

	"github.com/Pesteves2002/tomase-website/internal/domain"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
	"github.com/Pesteves2002/tomase-website/internal/logger"
)

// AddTodo accepts a todo title and answers "ok". Nothing is stored.
func AddTodo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := r.FormValue("title")
		d.Logger.Info("add_todo", logger.String("title", title))

		res, err := domain.AddTodo(title)
		if err != nil {
			d.Logger.Error("add_todo failed", logger.Error(err))
			writeText(d, w, http.StatusInternalServerError, err.Error())
			return
		}
		writeText(d, w, http.StatusOK, res)
	}
}
