package handlers

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/Pesteves2002/tomase-website/internal/domain"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/htmx"
	"github.com/Pesteves2002/tomase-website/internal/logger"
	"github.com/Pesteves2002/tomase-website/internal/view"
)

// defaultNumberInput is what the number demo shows before anything is typed.
const defaultNumberInput = "0"

// Home renders the landing page. The counter starts from ?count= when it parses,
// otherwise from the configured initial count.
func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		count := d.InitialCount
		if raw := q.Get("count"); raw != "" {
			if v, err := domain.ParseNumber(raw); err == nil {
				count = v
			} else {
				d.Logger.Debug("ignoring count query", logger.Error(err))
			}
		}

		input := defaultNumberInput
		if q.Has("value") {
			input = q.Get("value")
		}

		data := homeData(d, domain.NewCounter(count), input)
		page := view.HomePage(data)
		htmx.RenderPage(w, r, page, layout(d, page), http.StatusOK)
	}
}

// ADHD renders the secondary page.
func ADHD(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := view.ADHDPage()
		htmx.RenderPage(w, r, page, layout(d, page), http.StatusOK)
	}
}

// NotFound is the fallback for every unmatched route.
func NotFound(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := view.NotFound()
		htmx.RenderPage(w, r, page, layout(d, page), http.StatusNotFound)
	}
}

func layout(d deps.Deps, body templ.Component) templ.Component {
	return view.Layout(d.SiteTitle, body)
}

func homeData(d deps.Deps, c *domain.Counter, numberInput string) view.HomeData {
	snap := d.MemoryIndex.Snapshot()
	return view.HomeData{
		Profile: snap.Profile,
		Links:   snap.Links,
		Counter: view.NewCounterData(c),
		Number:  view.ParseNumberInput(numberInput),
	}
}

func writeText(d deps.Deps, w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
}
