package config

import (
	"fmt"
	"os"

	"stratigo-site/pkg/sitemap"

	"gopkg.in/yaml.v3"
)

type routesFile struct {
	Pages []sitemap.Page `yaml:"pages"`
}

// LoadSitemapPages reads the static route table. An empty path returns the
// built-in defaults.
func LoadSitemapPages(path string) ([]sitemap.Page, error) {
	if path == "" {
		return sitemap.DefaultPages, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading routes file %s: %w", path, err)
	}
	var f routesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("error unmarshalling routes file %s: %w", path, err)
	}
	for i, p := range f.Pages {
		if p.Path == "" {
			return nil, fmt.Errorf("routes file %s: page %d has no path", path, i)
		}
		if p.Priority == "" {
			f.Pages[i].Priority = "0.5"
		}
		if p.ChangeFreq == "" {
			f.Pages[i].ChangeFreq = "monthly"
		}
	}
	return f.Pages, nil
}
