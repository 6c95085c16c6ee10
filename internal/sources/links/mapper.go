package links

import (
	"fmt"

	"github.com/Pesteves2002/tomase-website/internal/domain"
)

// Mapper converts links.yaml content to domain values
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapLinks converts the configured links to entries, in file order.
// Names and urls are not validated; a file without any link is rejected so a
// typo never blanks the live page.
func (m *Mapper) MapLinks(config SiteConfig) ([]domain.LinkEntry, error) {
	if len(config.Links) == 0 {
		return nil, fmt.Errorf("no links found in links config")
	}

	pairs := make([]domain.LinkPair, 0, len(config.Links))
	for _, l := range config.Links {
		pairs = append(pairs, domain.LinkPair{Name: l.Name, URL: l.URL})
	}
	return domain.BuildDirectory(pairs), nil
}

// MapProfile overlays the configured profile fields on the default profile.
func (m *Mapper) MapProfile(config SiteConfig) domain.Profile {
	p := domain.DefaultProfile()
	if config.Profile == nil {
		return p
	}
	if v := config.Profile.Name; v != "" {
		p.Name = v
	}
	if v := config.Profile.Photo; v != "" {
		p.Photo = v
	}
	if v := config.Profile.PhotoAlt; v != "" {
		p.PhotoAlt = v
	}
	if v := config.Profile.Bio; v != "" {
		p.Bio = v
	}
	return p
}
