package view

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/Pesteves2002/tomase-website/internal/domain"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
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

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func TestLinkListRendersAnchorImagePairsInOrder(t *testing.T) {
	links := domain.BuildDirectory([]domain.LinkPair{
		{Name: "github", URL: "https://github.com/Pesteves2002/"},
		{Name: "linkedin", URL: "https://www.linkedin.com/in/tomase-pt/"},
	})

	doc := parse(t, render(t, LinkList(links)))
	anchors := findAll(doc, "a")
	require.Len(t, anchors, 2)

	for i, l := range links {
		require.Equal(t, l.URL(), attr(anchors[i], "href"))

		imgs := findAll(anchors[i], "img")
		require.Len(t, imgs, 1, "each anchor wraps exactly one image")
		require.Equal(t, l.IconPath(), attr(imgs[0], "src"))
		require.Equal(t, l.Name(), attr(imgs[0], "alt"))
	}
	require.Equal(t, "github", attr(findAll(anchors[0], "img")[0], "alt"))
	require.Equal(t, "linkedin", attr(findAll(anchors[1], "img")[0], "alt"))
}

func TestLinkListEmpty(t *testing.T) {
	doc := parse(t, render(t, LinkList(nil)))
	require.Empty(t, findAll(doc, "a"))
}

func TestLinkEscapesAttributes(t *testing.T) {
	out := render(t, Link(domain.NewLinkEntry(`x"><script>`, "https://e.com/?a=1&b=2")))
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "a=1&amp;b=2")
}

func TestNumberOutputValue(t *testing.T) {
	doc := parse(t, render(t, NumberOutput(ParseNumberInput("42"))))

	strong := findAll(doc, "strong")
	require.Len(t, strong, 1)
	require.Equal(t, "42", textOf(strong[0]))

	for _, div := range findAll(doc, "div") {
		require.False(t, hasClass(div, "error"), "no error panel for a valid number")
	}
}

func TestNumberOutputErrorPanel(t *testing.T) {
	doc := parse(t, render(t, NumberOutput(ParseNumberInput("abc"))))

	var panel *html.Node
	for _, div := range findAll(doc, "div") {
		if hasClass(div, "error") {
			panel = div
		}
	}
	require.NotNil(t, panel, "error panel should be rendered")

	items := findAll(panel, "li")
	require.Len(t, items, 1)
	require.NotEmpty(t, strings.TrimSpace(textOf(items[0])))
	require.Empty(t, findAll(doc, "strong"), "no numeric value rendered on error")
}

func TestNumberPanelKeepsInput(t *testing.T) {
	doc := parse(t, render(t, NumberPanel(ParseNumberInput(`"quoted"`))))
	inputs := findAll(doc, "input")
	require.Len(t, inputs, 1)
	require.Equal(t, `"quoted"`, attr(inputs[0], "value"))
}

func TestCounterPanel(t *testing.T) {
	c := domain.NewCounter(domain.DefaultInitialCount)
	c.Increment()

	out := render(t, CounterPanel(NewCounterData(c)))
	require.Contains(t, out, "Click Me: 11")
	require.Contains(t, out, "Double count: 22")
	require.Contains(t, out, "Odd: true")
	require.Contains(t, out, `name="count" value="11"`)
	require.Contains(t, out, `/api/load?value=11`)
	require.Contains(t, out, LoadingText)
}

func TestLoadPlaceholderAndResult(t *testing.T) {
	pending := render(t, LoadPlaceholder(3))
	require.Contains(t, pending, "Loading...")
	require.Contains(t, pending, `hx-trigger="load"`)

	done := render(t, LoadResult(domain.Load(3)))
	require.Contains(t, done, "Server returned 30")
	require.NotContains(t, done, "Loading...")
}

func TestLayoutWrapsBody(t *testing.T) {
	out := render(t, Layout("Home | Tomás Esteves", NotFound()))
	require.True(t, strings.HasPrefix(out, "<!doctype html>"))

	doc := parse(t, out)
	titles := findAll(doc, "title")
	require.Len(t, titles, 1)
	require.Equal(t, "Home | Tomás Esteves", textOf(titles[0]))

	var hrefs []string
	for _, a := range findAll(doc, "a") {
		hrefs = append(hrefs, attr(a, "href"))
	}
	require.Equal(t, []string{"/", "/ADHD"}, hrefs)
	require.Contains(t, out, NotFoundText)
}

func TestHomePageEscapesBio(t *testing.T) {
	p := domain.DefaultProfile()
	p.Bio = "<b>bold</b> & more"

	out := render(t, HomePage(HomeData{
		Profile: p,
		Links:   domain.BuildDirectory([]domain.LinkPair{{Name: "github", URL: "https://github.com"}}),
		Counter: NewCounterData(domain.NewCounter(10)),
		Number:  ParseNumberInput("0"),
	}))
	require.Contains(t, out, "&lt;b&gt;bold&lt;/b&gt; &amp; more")
	require.Contains(t, out, `src="me.jpg"`)
	require.Contains(t, out, "Add Todo")
}

func TestRenderStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := HomePage(HomeData{
		Profile: domain.DefaultProfile(),
		Counter: NewCounterData(domain.NewCounter(domain.DefaultInitialCount)),
		Number:  ParseNumberInput("0"),
	}).Render(ctx, &buf)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, buf.Len())
}

func TestLayoutRendersBodyComponent(t *testing.T) {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="body">inside</p>`)
		return err
	})

	doc := parse(t, render(t, Layout("t", body)))
	mains := findAll(doc, "main")
	require.Len(t, mains, 1)
	require.Len(t, findAll(mains[0], "nav"), 1)

	ps := findAll(mains[0], "p")
	require.Len(t, ps, 1)
	require.Equal(t, "body", attr(ps[0], "id"))
}
