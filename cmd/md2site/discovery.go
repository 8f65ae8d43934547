package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/config"
)

// Sentinel errors for page discovery.
var (
	ErrNoContentDir       = errors.New("no content directory specified")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// PageToBuild represents a single Markdown source and its destination.
type PageToBuild struct {
	InputPath  string
	OutputPath string
}

// discoverPages walks the content directory and maps every Markdown file to
// its mirrored .html path under the output directory.
func discoverPages(contentDir, outputDir string) ([]PageToBuild, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(contentDir); err != nil {
			return nil, err
		}
		out := filepath.Join(outputDir, htmlName(filepath.Base(contentDir)))
		return []PageToBuild{{InputPath: contentDir, OutputPath: out}}, nil
	}

	var pages []PageToBuild
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		pages = append(pages, PageToBuild{
			InputPath:  path,
			OutputPath: filepath.Join(outputDir, filepath.Dir(rel), htmlName(filepath.Base(rel))),
		})
		return nil
	})

	return pages, err
}

// htmlName maps a Markdown filename to its HTML counterpart.
func htmlName(base string) string {
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
