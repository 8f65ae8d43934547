package md2site

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/markdown"
)

// Service orchestrates the markdown-to-page pipeline. It is safe for
// concurrent use: configuration is immutable after New and the engine is
// purely functional.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration. Without options it
// renders pages with the embedded default template, plain fenced-code
// output, and no title fallback.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GeneratePage runs the full pipeline for one document. The context is
// checked between stages; work in progress is not interrupted since every
// stage is bounded, in-memory CPU work.
func (s *Service) GeneratePage(ctx context.Context, input Input) (*Page, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	meta, body, err := parseFrontMatter(input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := markdown.Convert(body, s.codeRenderer())
	if err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	content, err := root.ToHTML()
	if err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title, err := s.resolveTitle(meta, body)
	if err != nil {
		return nil, err
	}

	tmpl, err := s.resolveTemplate(input.Template)
	if err != nil {
		return nil, err
	}

	doc := RenderTemplate(tmpl, title, content)
	doc, err = s.renderDate(doc, meta.Date)
	if err != nil {
		return nil, err
	}

	return &Page{
		Title:    title,
		Content:  content,
		Document: doc,
		Meta:     meta,
	}, nil
}

// renderDate substitutes the date placeholder when the template carries one.
// A zero date substitutes the empty string.
func (s *Service) renderDate(doc string, date time.Time) (string, error) {
	if !strings.Contains(doc, DatePlaceholder) {
		return doc, nil
	}
	if date.IsZero() {
		return strings.ReplaceAll(doc, DatePlaceholder, ""), nil
	}
	formatted, err := dateutil.FormatDate(date, s.cfg.dateFormat)
	if err != nil {
		return "", fmt.Errorf("formatting page date: %w", err)
	}
	return strings.ReplaceAll(doc, DatePlaceholder, formatted), nil
}

// resolveTitle picks the page title: front matter wins, then the first
// level-1 heading, then the configured default. Without any of those the
// engine's ErrTitleNotFound propagates so the caller decides.
func (s *Service) resolveTitle(meta PageMeta, body string) (string, error) {
	if meta.Title != "" {
		return meta.Title, nil
	}
	title, err := markdown.ExtractTitle(body)
	if err != nil {
		if s.cfg.defaultTitle != "" {
			return s.cfg.defaultTitle, nil
		}
		return "", err
	}
	return title, nil
}

// resolveTemplate picks the page template: per-input override, then the
// service template, then the embedded default.
func (s *Service) resolveTemplate(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if s.cfg.template != "" {
		return s.cfg.template, nil
	}
	return assets.NewEmbeddedLoader().LoadTemplate(assets.DefaultTemplate)
}

// codeRenderer adapts the public CodeRenderer to the engine's node-based
// hook. A nil renderer keeps the engine default.
func (s *Service) codeRenderer() markdown.CodeRenderer {
	if s.cfg.code == nil {
		return nil
	}
	code := s.cfg.code
	return func(info, content string) (markdown.Node, error) {
		html, ok, err := code(info, content)
		if err != nil {
			return nil, err
		}
		if !ok {
			return markdown.DefaultCodeRenderer(info, content)
		}
		// Raw markup goes in an untagged leaf, which renders verbatim.
		return markdown.NewLeaf("", html), nil
	}
}
