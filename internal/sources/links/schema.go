package links

// SiteConfig is the root structure of links.yaml
//
//	profile:
//	  name: Tomás Esteves
//	  bio: ...
//	links:
//	  - name: github
//	    url: https://github.com/Pesteves2002/
//
// Link order in the file is the display order.
type SiteConfig struct {
	Profile *ProfileProps `yaml:"profile,omitempty"`
	Links   []LinkProps   `yaml:"links"`
}

// ProfileProps overrides parts of the default profile. Empty fields keep the default.
type ProfileProps struct {
	Name     string `yaml:"name,omitempty"`
	Photo    string `yaml:"photo,omitempty"`
	PhotoAlt string `yaml:"photoAlt,omitempty"`
	Bio      string `yaml:"bio,omitempty"`
}

// LinkProps is one (name, url) pair. The icon is derived from the name and cannot be set.
type LinkProps struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}
