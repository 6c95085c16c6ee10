package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
)

// StaticPrefixes are the paths served from the asset filesystem.
var StaticPrefixes = []string{"/icons/", "/pkg/", "/me.jpg"}

func init() { Register(registerAssets) }

func registerAssets(r chi.Router, d deps.Deps) {
	if d.Assets == nil {
		return
	}
	files := http.FileServerFS(d.Assets)
	r.Handle("/icons/*", files)
	r.Handle("/pkg/*", files)
	r.Handle("/me.jpg", files)
}
