package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// envConfig holds configuration from environment variables. Provides
// CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // MD2SITE_CONFIG: config file path
	ContentDir   string // MD2SITE_CONTENT_DIR: markdown source directory
	OutputDir    string // MD2SITE_OUTPUT_DIR: output directory
	StaticDir    string // MD2SITE_STATIC_DIR: static asset directory
	Template     string // MD2SITE_TEMPLATE: page template path or name
	TemplatesDir string // MD2SITE_TEMPLATES_DIR: base directory for named templates
	Highlight    string // MD2SITE_HIGHLIGHT: chroma style name
	Workers      int    // MD2SITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2SITE_* environment variables. Used to detect
// typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":        true,
	"MD2SITE_CONTENT_DIR":   true,
	"MD2SITE_OUTPUT_DIR":    true,
	"MD2SITE_STATIC_DIR":    true,
	"MD2SITE_TEMPLATE":      true,
	"MD2SITE_TEMPLATES_DIR": true,
	"MD2SITE_HIGHLIGHT":     true,
	"MD2SITE_WORKERS":       true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("MD2SITE_CONFIG"),
		ContentDir:   os.Getenv("MD2SITE_CONTENT_DIR"),
		OutputDir:    os.Getenv("MD2SITE_OUTPUT_DIR"),
		StaticDir:    os.Getenv("MD2SITE_STATIC_DIR"),
		Template:     os.Getenv("MD2SITE_TEMPLATE"),
		TemplatesDir: os.Getenv("MD2SITE_TEMPLATES_DIR"),
		Highlight:    os.Getenv("MD2SITE_HIGHLIGHT"),
	}

	if raw := os.Getenv("MD2SITE_WORKERS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			cfg.Workers = n
		}
	}

	return cfg
}

// warnUnknownEnvVars reports MD2SITE_* variables that are not recognized,
// so a typo does not silently disable an override.
func warnUnknownEnvVars(w io.Writer) {
	for _, kv := range os.Environ() {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "MD2SITE_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "Warning: unknown environment variable %s\n", name)
		}
	}
}
