package md2site

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// newHighlightRenderer builds a CodeRenderer that highlights fenced blocks
// with chroma using inline styles, so pages need no extra stylesheet.
// Fences without a language, or with one chroma does not know, fall back to
// the plain rendering.
func newHighlightRenderer(styleName string) CodeRenderer {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := chromahtml.New(chromahtml.WithClasses(false))

	return func(info, code string) (string, bool, error) {
		if info == "" {
			return "", false, nil
		}
		lexer := lexers.Get(info)
		if lexer == nil {
			return "", false, nil
		}
		lexer = chroma.Coalesce(lexer)

		iterator, err := lexer.Tokenise(nil, code)
		if err != nil {
			return "", false, fmt.Errorf("highlighting %q block: %w", info, err)
		}
		var buf bytes.Buffer
		if err := formatter.Format(&buf, style, iterator); err != nil {
			return "", false, fmt.Errorf("highlighting %q block: %w", info, err)
		}
		return buf.String(), true, nil
	}
}
