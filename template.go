package md2site

import "strings"

// Template placeholders, substituted literally. Pages use plain string
// replacement rather than html/template so site templates stay inert text
// with no execution semantics.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
	DatePlaceholder    = "{{ Date }}"
)

// RenderTemplate substitutes the title and content fragment into the page
// template. Every occurrence of each placeholder is replaced.
func RenderTemplate(tmpl, title, content string) string {
	out := strings.ReplaceAll(tmpl, TitlePlaceholder, title)
	return strings.ReplaceAll(out, ContentPlaceholder, content)
}
