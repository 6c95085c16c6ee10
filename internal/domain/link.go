package domain

// IconDir is the asset directory holding one SVG per link name.
const IconDir = "icons/"

// LinkEntry represents one outbound reference shown on the home page.
//
// Entries are immutable once built: fields are unexported and IconPath is always
// derived from Name, so it can never drift from the naming convention.
type LinkEntry struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// name is the short identifier used as alt text and as the icon key.
	// Example: github
	name string

	// url is the destination, opaque to the site (mailto:, https:, ...).
	url string
}

// LinkPair is a raw (name, url) couple as supplied by configuration.
type LinkPair struct {
	Name string
	URL  string
}

// NewLinkEntry builds a LinkEntry. It never fails and performs no validation:
// an empty name yields the icon path "icons/.svg".
func NewLinkEntry(name, url string) LinkEntry {
	return LinkEntry{name: name, url: url}
}

// Name returns the link identifier.
func (l LinkEntry) Name() string { return l.name }

// URL returns the link destination unchanged.
func (l LinkEntry) URL() string { return l.url }

// IconPath returns "icons/<name>.svg".
func (l LinkEntry) IconPath() string {
	return IconPath(l.name)
}

// IconPath derives the icon asset path for a link name.
func IconPath(name string) string {
	return IconDir + name + ".svg"
}

// BuildDirectory turns configured pairs into link entries, preserving order and length.
// Duplicate names or urls are kept as-is.
func BuildDirectory(pairs []LinkPair) []LinkEntry {
	entries := make([]LinkEntry, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, NewLinkEntry(p.Name, p.URL))
	}
	return entries
}
