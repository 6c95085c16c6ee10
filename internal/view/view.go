// Package view holds the site's templ components. The .templ files are the
// source of truth; the _templ.go files next to them are generated from them.
//
//go:generate templ generate
package view

import (
	"strconv"

	"github.com/Pesteves2002/tomase-website/internal/domain"
)

// NotFoundText is the fallback shown for unknown routes.
const NotFoundText = "Page not found :("

// LoadingText is shown while the fake load is pending.
const LoadingText = "Loading..."

// DefaultTodoTitle is what the demo button submits.
const DefaultTodoTitle = "So much to do!"

// HomeData is the view model for the home page.
type HomeData struct {
	Profile domain.Profile
	Links   []domain.LinkEntry
	Counter CounterData
	Number  NumberResult
}

// CounterData is a read-only snapshot of a counter and its projections.
type CounterData struct {
	Count   int
	Doubled int64
	IsOdd   bool
}

// NewCounterData reads the counter's current value and derives the projections from it.
func NewCounterData(c *domain.Counter) CounterData {
	v := c.Value()
	return CounterData{
		Count:   v,
		Doubled: domain.Doubled(v),
		IsOdd:   domain.IsOdd(v),
	}
}

// NumberResult is the outcome of parsing the demo input: either Value or Err is meaningful.
type NumberResult struct {
	Input string
	Value int
	Err   error
}

// ParseNumberInput runs the parse boundary on text.
func ParseNumberInput(text string) NumberResult {
	v, err := domain.ParseNumber(text)
	return NumberResult{Input: text, Value: v, Err: err}
}

func loadURL(value int) string {
	return "/api/load?value=" + strconv.Itoa(value)
}
