package layout

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Fantasim/site/internal/config"
)

// NavLink is one entry of the header navigation.
type NavLink struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// SiteConfig describes the chrome shared by every page.
type SiteConfig struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Lang        string    `yaml:"lang"`
	Stylesheet  string    `yaml:"stylesheet"`
	Nav         []NavLink `yaml:"nav"`
	Footer      string    `yaml:"footer"`
}

// DefaultSite is used when no site file exists.
func DefaultSite() SiteConfig {
	return SiteConfig{
		Title:      "Site",
		Lang:       "en",
		Stylesheet: config.StaticPrefix + "site.css",
		Nav: []NavLink{
			{Label: "Home", Path: "/"},
		},
	}
}

// LoadSite reads a site file. A missing file yields DefaultSite.
func LoadSite(path string) (SiteConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("site file not found, using defaults", "path", path)
		return DefaultSite(), nil
	}
	if err != nil {
		return SiteConfig{}, fmt.Errorf("read site file %q: %w", path, err)
	}

	site, err := ParseSite(data)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("site file %q: %w", path, err)
	}

	slog.Info("site file loaded",
		"path", path,
		"title", site.Title,
		"navLinks", len(site.Nav),
	)
	return site, nil
}

// ParseSite decodes YAML over DefaultSite, so omitted keys keep their defaults.
func ParseSite(data []byte) (SiteConfig, error) {
	site := DefaultSite()
	if err := yaml.Unmarshal(data, &site); err != nil {
		return SiteConfig{}, fmt.Errorf("%w: %v", config.ErrInvalidSite, err)
	}
	if err := site.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return site, nil
}

// Validate checks the site description.
func (s SiteConfig) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: title is required", config.ErrInvalidSite)
	}
	for i, link := range s.Nav {
		if link.Label == "" {
			return fmt.Errorf("%w: nav[%d] has no label", config.ErrInvalidSite, i)
		}
		if !strings.HasPrefix(link.Path, "/") {
			return fmt.Errorf("%w: nav[%d] path %q must start with /", config.ErrInvalidSite, i, link.Path)
		}
	}
	return nil
}
