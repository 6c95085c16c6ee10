package links

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var templateVar = regexp.MustCompile(`\{\{\s*(TOMASE_VAR_[A-Za-z0-9_]+)\s*\}\}`)

// Loader handles loading and parsing of links.yaml
type Loader struct {
	filePath string
	lookup   func(string) (string, bool)
}

// NewLoader creates a new links file loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
		lookup:   os.LookupEnv,
	}
}

// Path returns the file this loader reads.
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads and parses the links file
func (l *Loader) Load() (SiteConfig, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("failed to read links file: %w", err)
	}
	return l.Parse(data)
}

// Parse decodes links.yaml content after expanding {{TOMASE_VAR_...}} placeholders.
func (l *Loader) Parse(data []byte) (SiteConfig, error) {
	data = expandTemplateVariables(data, l.lookup)

	var config SiteConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return SiteConfig{}, fmt.Errorf("failed to parse links yaml: %w", err)
	}

	return config, nil
}

// expandTemplateVariables replaces {{TOMASE_VAR_X}} with the X environment value.
// Unset variables become an empty string.
// Example: {{TOMASE_VAR_MAIL}} -> me@tomase.pt
func expandTemplateVariables(data []byte, lookup func(string) (string, bool)) []byte {
	return templateVar.ReplaceAllFunc(data, func(match []byte) []byte {
		name := templateVar.FindSubmatch(match)[1]
		v, _ := lookup(string(name))
		return []byte(v)
	})
}
