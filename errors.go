package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/markdown"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrFrontMatter   = errors.New("invalid front matter")

	// Conversion errors surfaced from the engine, exported so callers can
	// classify failures with errors.Is.
	ErrMarkdownSyntax = markdown.ErrMarkdownSyntax
	ErrTitleNotFound  = markdown.ErrTitleNotFound
)
