package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultSiteTitle is used when site.yaml is absent or sets no title.
const DefaultSiteTitle = "Foresite"

// Site holds site-wide values exposed to templates as `site`.
type Site map[string]any

// Title returns the site title. Scalar titles such as `title: 2024` are
// rendered as text; empty or structured values yield DefaultSiteTitle.
func (s Site) Title() string {
	switch t := s["title"].(type) {
	case string:
		if t != "" {
			return t
		}
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(t)
	}
	return DefaultSiteTitle
}

// LoadSite reads the optional site configuration file. A missing file
// yields the defaults.
func LoadSite(filename string) (Site, error) {
	site := Site{"title": DefaultSiteTitle}

	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return site, nil
		}
		return nil, fmt.Errorf("error reading config file %s: %w", filename, err)
	}

	values := make(map[string]any)
	if err := yaml.Unmarshal(yamlFile, &values); err != nil {
		return nil, fmt.Errorf("error unmarshalling config file %s: %w", filename, err)
	}
	for k, v := range values {
		site[k] = v
	}
	site["title"] = site.Title()

	return site, nil
}
