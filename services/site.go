package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SiteConfigFile is the name of the site configuration file expected in the
// root of the blog source tree.
const SiteConfigFile = "site.yaml"

// SiteConfig is the static site configuration loaded from site.yaml
type SiteConfig struct {
	Title       string `yaml:"title"`
	BaseURL     string `yaml:"base_url"`
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
	PostsDir    string `yaml:"posts_dir"`
	StaticDir   string `yaml:"static_dir"`
	OutputDir   string `yaml:"output_dir"`
}

// LoadSiteConfig reads and validates site.yaml from the site directory
func LoadSiteConfig(siteDir string) (*SiteConfig, error) {
	path := filepath.Join(siteDir, SiteConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config %s: %w", path, err)
	}

	var config SiteConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse site config %s: %w", path, err)
	}

	if config.Title == "" {
		return nil, fmt.Errorf("site config %s: title is required", path)
	}

	config.applyDefaults()
	if err := config.validate(path); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *SiteConfig) applyDefaults() {
	if c.PostsDir == "" {
		c.PostsDir = "posts"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
}

// validate rejects an output directory that is, or escapes, the site root.
// The build wipes the output directory before rendering, so such a value
// would delete the blog source tree itself.
func (c *SiteConfig) validate(path string) error {
	out := filepath.Clean(c.OutputDir)
	if filepath.IsAbs(out) || out == "." || out == ".." ||
		strings.HasPrefix(out, ".."+string(filepath.Separator)) {
		return fmt.Errorf("site config %s: output_dir %q must be a subdirectory of the site root", path, c.OutputDir)
	}
	for _, src := range []string{c.PostsDir, c.StaticDir, "templates"} {
		if out == filepath.Clean(src) {
			return fmt.Errorf("site config %s: output_dir %q would overwrite source directory %q", path, c.OutputDir, src)
		}
	}
	return nil
}
