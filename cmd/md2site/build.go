package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for build operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrReadTemplate = errors.New("failed to read template file")
	ErrWritePage    = errors.New("failed to write page")
	ErrPagesFailed  = errors.New("some pages failed")
)

// PageGenerator is the interface for the page generation service.
type PageGenerator interface {
	GeneratePage(ctx context.Context, input md2site.Input) (*md2site.Page, error)
}

// Compile-time interface implementation check.
var _ PageGenerator = (*md2site.Service)(nil)

// BuildResult holds the outcome of generating a single page.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Skipped    bool // draft page excluded from the build
	Err        error
	Duration   time.Duration
}

// run merges configuration, prepares the service, and builds the site.
func run(flags *buildFlags, args []string, stdout, stderr io.Writer) error {
	warnUnknownEnvVars(stderr)

	cfg, err := mergeConfig(flags, args)
	if err != nil {
		return err
	}
	if cfg.Content.Dir == "" {
		return ErrNoContentDir
	}
	if err := validateWorkers(cfg.Build.Workers); err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	if cfg.Static.Dir != "" {
		if !flags.common.quiet {
			fmt.Fprintf(stderr, "Copying static assets from %s\n", cfg.Static.Dir)
		}
		if err := fileutil.CopyDir(cfg.Static.Dir, cfg.Output.Dir); err != nil {
			return fmt.Errorf("copying static assets: %w", err)
		}
	}

	pages, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		if !flags.common.quiet {
			fmt.Fprintln(stderr, "No markdown files found")
		}
		return nil
	}

	workers := resolveWorkers(cfg.Build.Workers)
	if flags.common.verbose {
		fmt.Fprintf(stderr, "Building %d pages with %d workers\n", len(pages), workers)
	}

	results := buildBatch(context.Background(), svc, pages, workers, cfg.Build.IncludeDrafts)
	return report(results, flags, stdout, stderr)
}

// mergeConfig applies the precedence flags > environment > config file >
// defaults.
func mergeConfig(flags *buildFlags, args []string) (*config.Config, error) {
	env := loadEnvConfig()

	configPath := flags.common.config
	if configPath == "" {
		configPath = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Environment overrides the file.
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.StaticDir != "" {
		cfg.Static.Dir = env.StaticDir
	}
	if env.Template != "" {
		cfg.Site.Template = env.Template
	}
	if env.TemplatesDir != "" {
		cfg.Site.TemplatesDir = env.TemplatesDir
	}
	if env.Highlight != "" {
		cfg.Site.Highlight = env.Highlight
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}

	// Flags override everything.
	if len(args) > 0 {
		cfg.Content.Dir = args[0]
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.static != "" {
		cfg.Static.Dir = flags.static
	}
	if flags.site.template != "" {
		cfg.Site.Template = flags.site.template
	}
	if flags.site.templatesDir != "" {
		cfg.Site.TemplatesDir = flags.site.templatesDir
	}
	if flags.site.defaultTitle != "" {
		cfg.Site.DefaultTitle = flags.site.defaultTitle
	}
	if flags.site.highlight != "" {
		cfg.Site.Highlight = flags.site.highlight
	}
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}
	if flags.site.includeDrafts {
		cfg.Build.IncludeDrafts = true
	}

	return cfg, nil
}

// newService builds the page generation service from merged configuration.
func newService(cfg *config.Config) (*md2site.Service, error) {
	var opts []md2site.Option

	if cfg.Site.Template != "" {
		tmpl, err := loadTemplate(cfg.Site.Template, cfg.Site.TemplatesDir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, md2site.WithTemplate(tmpl))
	}
	if cfg.Site.DefaultTitle != "" {
		opts = append(opts, md2site.WithDefaultTitle(cfg.Site.DefaultTitle))
	}
	if cfg.Site.Highlight != "" {
		opts = append(opts, md2site.WithHighlighting(cfg.Site.Highlight))
	}

	return md2site.New(opts...), nil
}

// loadTemplate resolves a template by path or name. Values containing a
// path separator are read directly; bare names are resolved against
// {templatesDir}/templates/{name}.html with fallback to the embedded set.
func loadTemplate(nameOrPath, templatesDir string) (string, error) {
	if fileutil.IsFilePath(nameOrPath) {
		tmpl, err := os.ReadFile(nameOrPath) // #nosec G304 -- template path is user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
		}
		return string(tmpl), nil
	}

	resolver, err := assets.NewResolver(templatesDir)
	if err != nil {
		return "", err
	}
	return resolver.LoadTemplate(nameOrPath)
}

// resolveWorkers determines the worker count. Priority: explicit setting >
// GOMAXPROCS (adjusted by automaxprocs for containers), capped at 8.
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}

// buildBatch generates pages concurrently. The service is shared: it is
// immutable and the engine is pure, so no per-worker state is needed.
func buildBatch(ctx context.Context, svc PageGenerator, pages []PageToBuild, workers int, includeDrafts bool) []BuildResult {
	if len(pages) == 0 {
		return nil
	}
	if workers > len(pages) {
		workers = len(pages)
	}

	results := make([]BuildResult, len(pages))
	jobs := make(chan int, len(pages))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildResult{InputPath: pages[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = buildPage(ctx, svc, pages[idx], includeDrafts)
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage generates a single page and writes it to disk.
func buildPage(ctx context.Context, svc PageGenerator, p PageToBuild, includeDrafts bool) BuildResult {
	start := time.Now()
	result := BuildResult{InputPath: p.InputPath, OutputPath: p.OutputPath}

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	page, err := svc.GeneratePage(ctx, md2site.Input{Markdown: string(content)})
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", p.InputPath, err)
		result.Duration = time.Since(start)
		return result
	}

	if page.Meta.Draft && !includeDrafts {
		result.Skipped = true
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(p.OutputPath), fileutil.DirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}
	// #nosec G306 -- generated pages are meant to be readable
	if err := os.WriteFile(p.OutputPath, []byte(page.Document), fileutil.FilePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
	}

	result.Duration = time.Since(start)
	return result
}

// report prints per-page outcomes and a summary, then returns an error if
// any page failed.
func report(results []BuildResult, flags *buildFlags, stdout, stderr io.Writer) error {
	var built, skipped, failed int
	var firstErr error

	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(stderr, "Error: %v\n", r.Err)
		case r.Skipped:
			skipped++
			if flags.common.verbose {
				fmt.Fprintf(stderr, "Skipped draft %s\n", r.InputPath)
			}
		default:
			built++
			if flags.common.verbose {
				fmt.Fprintf(stderr, "Built %s (%s)\n", r.OutputPath, r.Duration.Round(time.Millisecond))
			} else if !flags.common.quiet {
				fmt.Fprintf(stdout, "Created %s\n", r.OutputPath)
			}
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(stderr, "%d built, %d skipped, %d failed\n", built, skipped, failed)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d (first: %v)", ErrPagesFailed, failed, len(results), firstErr)
	}
	return nil
}
