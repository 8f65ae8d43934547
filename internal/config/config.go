// Package config loads and validates site configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid worker count")
)

// Field length limits. Generous, but bounded so a hostile config cannot
// balloon page output or error messages.
const (
	MaxPathLength  = 4096 // Filesystem paths
	MaxTitleLength = 200  // Default page title
	MaxStyleLength = 50   // Chroma style name
	MaxWorkers     = 64   // Parallel page workers
)

// Config holds all configuration for site generation.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Static  StaticConfig  `yaml:"static"`
	Site    SiteConfig    `yaml:"site"`
	Build   BuildConfig   `yaml:"build"`
}

// ContentConfig defines where Markdown sources live.
type ContentConfig struct {
	Dir string `yaml:"dir"` // Markdown source directory (empty = must specify)
}

// OutputConfig defines where generated pages go.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = "public")
}

// StaticConfig defines static asset copying.
type StaticConfig struct {
	Dir string `yaml:"dir"` // Static asset directory (empty = none)
}

// SiteConfig defines page rendering options.
type SiteConfig struct {
	Template     string `yaml:"template"`     // Template file path or name (empty = embedded default)
	TemplatesDir string `yaml:"templatesDir"` // Base dir for named templates, holding templates/{name}.html
	DefaultTitle string `yaml:"defaultTitle"` // Fallback title for pages with no H1
	Highlight    string `yaml:"highlight"`    // Chroma style name (empty = no highlighting)
}

// BuildConfig defines build behavior.
type BuildConfig struct {
	Workers       int  `yaml:"workers"`       // Parallel workers (0 = auto)
	IncludeDrafts bool `yaml:"includeDrafts"` // Generate pages marked draft in front matter
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: "public"},
	}
}

// Validate checks field lengths and value ranges. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("content.dir", c.Content.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("static.dir", c.Static.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.template", c.Site.Template, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.templatesDir", c.Site.TemplatesDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.defaultTitle", c.Site.DefaultTitle, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.highlight", c.Site.Highlight, MaxStyleLength); err != nil {
		return err
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d, 0 means auto)", ErrInvalidWorkers, c.Build.Workers, MaxWorkers)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name. If
// nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate file paths for a config name, in
// search order: .yaml then .yml in the current directory, then in the user
// config directory under go-md2site/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2site", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in the standard
// locations.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, path := range paths {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
