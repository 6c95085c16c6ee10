package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/net/html"

	"github.com/Pesteves2002/tomase-website/internal/assets"
	"github.com/Pesteves2002/tomase-website/internal/config"
	"github.com/Pesteves2002/tomase-website/internal/domain"
	"github.com/Pesteves2002/tomase-website/internal/httpserver/deps"
	"github.com/Pesteves2002/tomase-website/internal/index"
	"github.com/Pesteves2002/tomase-website/internal/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testDeps(links ...domain.LinkPair) deps.Deps {
	idx := index.NewMemoryIndex()
	if len(links) > 0 {
		idx.Update(domain.BuildDirectory(links), domain.DefaultProfile(), "test")
	}
	return deps.Deps{
		Logger:          logger.NewNop(),
		StartTime:       time.Now(),
		Version:         "test",
		MemoryIndex:     idx,
		Assets:          assets.Embedded(),
		SiteTitle:       "Home | Tomás Esteves",
		InitialCount:    domain.DefaultInitialCount,
		LoadDelay:       10 * time.Millisecond,
		RateLimitBurst:  1000,
		RateLimitPerMin: 6000,
	}
}

var defaultPairs = []domain.LinkPair{
	{Name: "github", URL: "https://github.com/Pesteves2002/"},
	{Name: "linkedin", URL: "https://www.linkedin.com/in/tomase-pt/"},
}

func newTestRouter(d deps.Deps) http.Handler {
	cfg := &config.Config{RequestTimeout: 2 * time.Second}
	return NewRouter(cfg, d.Logger, d)
}

func do(t *testing.T, h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func htmxReq(method, target string, body url.Values) *http.Request {
	r := formReq(method, target, body)
	r.Header.Set("HX-Request", "true")
	return r
}

func formReq(method, target string, body url.Values) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}
	r := httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestHomeRendersLinksInOrder(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	doc, err := html.Parse(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)

	containers := findAll(doc, func(n *html.Node) bool { return attr(n, "class") == "links-container" })
	require.Len(t, containers, 1)

	anchors := findAll(containers[0], func(n *html.Node) bool { return n.Data == "a" })
	require.Len(t, anchors, 2)

	wantAlt := []string{"github", "linkedin"}
	for i, a := range anchors {
		require.Equal(t, defaultPairs[i].URL, attr(a, "href"))
		imgs := findAll(a, func(n *html.Node) bool { return n.Data == "img" })
		require.Len(t, imgs, 1)
		require.Equal(t, wantAlt[i], attr(imgs[0], "alt"))
		require.Equal(t, "icons/"+wantAlt[i]+".svg", attr(imgs[0], "src"))
	}
}

func TestHomeShowsInitialCounter(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	body := do(t, h, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	require.Contains(t, body, "<!doctype html>")
	require.Contains(t, body, "<title>Home | Tomás Esteves</title>")
	require.Contains(t, body, "Click Me: 10")
	require.Contains(t, body, "Double count: 20")
	require.Contains(t, body, "Odd: false")
	require.Contains(t, body, "Loading...")
	require.Contains(t, body, `hx-get="/api/load?value=10"`)
	require.Contains(t, body, "You entered <strong>0</strong>")
}

func TestHomeCountQuery(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	body := do(t, h, httptest.NewRequest(http.MethodGet, "/?count=13", nil)).Body.String()
	require.Contains(t, body, "Click Me: 13")
	require.Contains(t, body, "Odd: true")

	body = do(t, h, httptest.NewRequest(http.MethodGet, "/?count=nope", nil)).Body.String()
	require.Contains(t, body, "Click Me: 10")
}

func TestADHDPage(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/ADHD", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ADHD Corner")
	require.Contains(t, rec.Body.String(), "<!doctype html>")
}

func TestNotFound(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Page not found :(")
	require.Contains(t, rec.Body.String(), "<!doctype html>")

	rec = do(t, h, htmxReq(http.MethodGet, "/nonexistent", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Page not found :(", rec.Body.String())

	rec = do(t, h, httptest.NewRequest(http.MethodDelete, "/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCounterIncrement(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, htmxReq(http.MethodPost, "/counter/increment", url.Values{"count": {"10"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.NotContains(t, body, "<!doctype html>")
	require.Contains(t, body, "Click Me: 11")
	require.Contains(t, body, "Double count: 22")
	require.Contains(t, body, "Odd: true")
	require.Contains(t, body, `hx-get="/api/load?value=11"`)
}

func TestCounterIncrementWithoutHTMXRedirects(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, formReq(http.MethodPost, "/counter/increment", url.Values{"count": {"-4"}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/?count=-3", rec.Header().Get("Location"))
}

func TestCounterIncrementRejectsGarbage(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, htmxReq(http.MethodPost, "/counter/increment", url.Values{"count": {"ten"}}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `cannot parse "ten"`)
}

func TestCounterIncrementStaysAtCeiling(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))
	top := strconv.Itoa(domain.MaxCount)

	rec := do(t, h, htmxReq(http.MethodPost, "/counter/increment", url.Values{"count": {top}}))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Click Me: "+top)
	require.Contains(t, body, "Double count: 4294967294")
	require.Contains(t, body, `name="count" value="`+top+`"`)

	// The next click posts the same value back and keeps working.
	rec = do(t, h, htmxReq(http.MethodPost, "/counter/increment", url.Values{"count": {top}}))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCounterIncrementRejectsOutOfRange(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, htmxReq(http.MethodPost, "/counter/increment", url.Values{"count": {"2147483648"}}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "number too large to fit in target type")
}

func TestLoad(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	start := time.Now()
	rec := do(t, h, htmxReq(http.MethodGet, "/api/load?value=3", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Server returned 30")
	require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestLoadCanceledWithRequest(t *testing.T) {
	d := testDeps(defaultPairs...)
	d.LoadDelay = time.Hour
	h := newTestRouter(d)

	ctx, cancel := context.WithCancel(context.Background())
	r := htmxReq(http.MethodGet, "/api/load?value=3", nil).WithContext(ctx)

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		done <- rec
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case rec := <-done:
		require.NotContains(t, rec.Body.String(), "Server returned")
	case <-time.After(2 * time.Second):
		t.Fatal("load did not stop after the request was canceled")
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, htmxReq(http.MethodGet, "/api/load?value=x", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNumbers(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, htmxReq(http.MethodGet, "/numbers?value=42", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "You entered <strong>42</strong>")
	require.NotContains(t, rec.Body.String(), `class="error"`)

	rec = do(t, h, htmxReq(http.MethodGet, "/numbers?value=abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `class="error"`)
	require.Contains(t, body, "Not a number! Errors:")
	require.Contains(t, body, "invalid digit found in string")
	require.NotContains(t, body, "You entered")
}

func TestNumbersIsStrict(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	tests := []struct {
		value string
		want  string
	}{
		{" 5 ", "invalid digit found in string"},
		{"2147483648", "number too large to fit in target type"},
		{"-2147483649", "number too small to fit in target type"},
	}
	for _, tt := range tests {
		rec := do(t, h, htmxReq(http.MethodGet, "/numbers?value="+url.QueryEscape(tt.value), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), tt.want, "value %q", tt.value)
		require.NotContains(t, rec.Body.String(), "You entered", "value %q", tt.value)
	}
}

func TestNumbersWithoutHTMXRendersPage(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/numbers?value=abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "<!doctype html>")
	require.Contains(t, body, `value="abc"`)
	require.Contains(t, body, "Not a number! Errors:")
}

func TestAddTodo(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, htmxReq(http.MethodPost, "/api/add_todo", url.Values{"title": {"So much to do!"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestAddTodoIsRateLimited(t *testing.T) {
	d := testDeps(defaultPairs...)
	d.RateLimitBurst = 1
	d.RateLimitPerMin = 1
	h := newTestRouter(d)

	require.Equal(t, http.StatusOK, do(t, h, htmxReq(http.MethodPost, "/api/add_todo", nil)).Code)
	require.Equal(t, http.StatusTooManyRequests, do(t, h, htmxReq(http.MethodPost, "/api/add_todo", nil)).Code)

	// Pages and the other demos share no bucket with add_todo.
	require.Equal(t, http.StatusOK, do(t, h, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	require.Equal(t, http.StatusOK, do(t, h, htmxReq(http.MethodPost, "/counter/increment", url.Values{"count": {"10"}})).Code)
}

// A visitor clicking the counter fires an increment and then a load for the
// new value. With the shipped defaults none of that may be throttled.
func TestCounterClickBurstWithDefaultConfig(t *testing.T) {
	cfg := config.Load()
	d := testDeps(defaultPairs...)
	d.RateLimitBurst = cfg.RateLimitBurst
	d.RateLimitPerMin = cfg.RateLimitPerMin
	d.RateLimitMax = cfg.RateLimitMaxItems
	d.LoadDelay = time.Millisecond
	h := newTestRouter(d)

	clicks := cfg.RateLimitBurst + 5
	count := domain.DefaultInitialCount
	for i := 0; i < clicks; i++ {
		rec := do(t, h, htmxReq(http.MethodPost, "/counter/increment", url.Values{"count": {strconv.Itoa(count)}}))
		require.Equal(t, http.StatusOK, rec.Code, "click %d", i+1)
		count++
		require.Contains(t, rec.Body.String(), "Click Me: "+strconv.Itoa(count))

		rec = do(t, h, htmxReq(http.MethodGet, "/api/load?value="+strconv.Itoa(count), nil))
		require.Equal(t, http.StatusOK, rec.Code, "load after click %d", i+1)
		require.Contains(t, rec.Body.String(), "Server returned "+strconv.Itoa(domain.Load(count)))
	}
	require.Equal(t, domain.DefaultInitialCount+clicks, count)

	// Typing into the number field fires one request per keystroke.
	for i := 0; i < clicks; i++ {
		rec := do(t, h, htmxReq(http.MethodGet, "/numbers?value="+strconv.Itoa(i), nil))
		require.Equal(t, http.StatusOK, rec.Code, "keystroke %d", i+1)
	}
}

func TestAssets(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/icons/github.svg", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	require.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/pkg/tomase-website.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// No portrait is embedded: a broken image, not a server error.
	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/me.jpg", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body healthz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body.Status)
	require.Equal(t, "test", body.Version)
}

type healthz struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func TestReadyz(t *testing.T) {
	rec := do(t, newTestRouter(testDeps(defaultPairs...)), httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ready":true,"links":2}`, rec.Body.String())

	rec = do(t, newTestRouter(testDeps()), httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestInfra(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/infra", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status     string `json:"status"`
		Components map[string]struct {
			OK          bool   `json:"ok"`
			LinksLoaded int    `json:"links_loaded"`
			Source      string `json:"source"`
			Error       string `json:"error"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 2, body.Components["links"].LinksLoaded)
	require.Equal(t, "test", body.Components["links"].Source)
	// The embedded assets have no portrait.
	require.False(t, body.Components["assets"].OK)
	require.Equal(t, "missing me.jpg", body.Components["assets"].Error)
	require.Equal(t, "degraded", body.Status)
}

func TestInfraRestrictedByCIDR(t *testing.T) {
	d := testDeps(defaultPairs...)
	d.AllowedCIDRS = []string{"10.0.0.0/8"}
	h := newTestRouter(d)

	r := httptest.NewRequest(http.MethodGet, "/infra", nil)
	r.RemoteAddr = "203.0.113.1:5000"
	require.Equal(t, http.StatusForbidden, do(t, h, r).Code)

	r = httptest.NewRequest(http.MethodGet, "/infra", nil)
	r.RemoteAddr = "10.0.0.7:5000"
	require.Equal(t, http.StatusOK, do(t, h, r).Code)

	// Health stays public.
	r = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.RemoteAddr = "203.0.113.1:5000"
	require.Equal(t, http.StatusOK, do(t, h, r).Code)
}

func TestReload(t *testing.T) {
	d := testDeps(defaultPairs...)
	rec := do(t, newTestRouter(d), httptest.NewRequest(http.MethodPost, "/reload", nil))
	require.Equal(t, http.StatusConflict, rec.Code)

	d.ReloadTrigger = make(chan struct{}, 1)
	h := newTestRouter(d)

	require.Equal(t, http.StatusAccepted, do(t, h, httptest.NewRequest(http.MethodPost, "/reload", nil)).Code)
	require.Equal(t, http.StatusTooManyRequests, do(t, h, httptest.NewRequest(http.MethodPost, "/reload", nil)).Code)

	<-d.ReloadTrigger
	require.Equal(t, http.StatusAccepted, do(t, h, httptest.NewRequest(http.MethodPost, "/reload", nil)).Code)
}

func TestEnforceHost(t *testing.T) {
	d := testDeps(defaultPairs...)
	d.AllowedHosts = []string{"tomase.pt"}
	h := newTestRouter(d)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Host = "tomase.pt"
	require.Equal(t, http.StatusOK, do(t, h, r).Code)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Host = "elsewhere.example"
	require.Equal(t, http.StatusMisdirectedRequest, do(t, h, r).Code)
}

func TestReloadIsRateLimited(t *testing.T) {
	h := newTestRouter(testDeps(defaultPairs...))

	for i := 0; i < 6; i++ {
		require.Equal(t, http.StatusConflict, do(t, h, httptest.NewRequest(http.MethodPost, "/reload", nil)).Code)
	}
	rec := do(t, h, httptest.NewRequest(http.MethodPost, "/reload", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "6", rec.Header().Get("X-RateLimit-Limit"))
}
