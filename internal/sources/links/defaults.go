package links

import "github.com/Pesteves2002/tomase-website/internal/domain"

// Icons for these names ship with the embedded assets.
var defaultPairs = []domain.LinkPair{
	{Name: "github", URL: "https://github.com/Pesteves2002/"},
	{Name: "linkedin", URL: "https://www.linkedin.com/in/tomase-pt/"},
	{Name: "mail", URL: "mailto:me@tomase.pt"},
	{Name: "strava", URL: "https://www.strava.com/athletes/26750651"},
}

// Defaults returns the built-in link directory used when no links file is configured.
func Defaults() []domain.LinkEntry {
	return domain.BuildDirectory(defaultPairs)
}
