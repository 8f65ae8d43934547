package md2site

import "time"

// Input contains page generation parameters.
type Input struct {
	Markdown string // Markdown content, possibly with front matter (required)
	Template string // Page template override for this input (optional)
}

// PageMeta holds front matter metadata parsed from a document header.
type PageMeta struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Author      string         `yaml:"author"`
	Date        time.Time      `yaml:"date"`
	Draft       bool           `yaml:"draft"`
	Tags        []string       `yaml:"tags"`
	Extra       map[string]any `yaml:",inline"`
}

// Page is the result of generating a single page.
type Page struct {
	Title    string   // Resolved page title
	Content  string   // HTML fragment produced from the Markdown body
	Document string   // Full page after template substitution
	Meta     PageMeta // Front matter metadata (zero value when absent)
}

// CodeRenderer renders a fenced code block to raw HTML. info is the text
// after the opening fence marker (usually a language name, often empty);
// code is the fence content, normalized to end with exactly one newline
// when non-empty. Returning ok=false falls back to the default
// <pre><code> rendering.
type CodeRenderer func(info, code string) (html string, ok bool, err error)

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	template     string
	defaultTitle string
	dateFormat   string
	code         CodeRenderer
}

// WithTemplate sets the page template used when Input.Template is empty.
// The template should contain the literal {{ Title }} and {{ Content }}
// placeholders.
func WithTemplate(tmpl string) Option {
	return func(s *Service) {
		s.cfg.template = tmpl
	}
}

// WithDefaultTitle sets a fallback title for documents that carry neither a
// front matter title nor a level-1 heading. Without it, such documents fail
// with ErrTitleNotFound.
func WithDefaultTitle(title string) Option {
	return func(s *Service) {
		s.cfg.defaultTitle = title
	}
}

// WithDateFormat sets the format used to substitute the {{ Date }}
// placeholder, as user-friendly tokens ("DD/MM/YYYY") or a preset name
// (iso, european, us, long). Defaults to ISO.
func WithDateFormat(format string) Option {
	return func(s *Service) {
		s.cfg.dateFormat = format
	}
}

// WithHighlighting enables syntax highlighting of fenced code blocks that
// carry a language name, using the named chroma style. Fences without a
// language keep the plain <pre><code> rendering.
func WithHighlighting(style string) Option {
	return func(s *Service) {
		s.cfg.code = newHighlightRenderer(style)
	}
}

// WithCodeRenderer installs a custom renderer for fenced code blocks.
// Overrides WithHighlighting.
func WithCodeRenderer(code CodeRenderer) Option {
	return func(s *Service) {
		s.cfg.code = code
	}
}
