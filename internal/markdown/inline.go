package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// SpanKind identifies the type of an inline span.
type SpanKind int

// Inline span kinds.
const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanImage
	SpanLink
)

// String returns the kind name, for diagnostics and test output.
func (k SpanKind) String() string {
	switch k {
	case SpanText:
		return "text"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	case SpanImage:
		return "image"
	case SpanLink:
		return "link"
	default:
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
}

// Span is a typed fragment of inline markdown content. Text holds the span
// content (the alt text for images, the anchor text for links). URL is set
// only for images and links. Spans are immutable once constructed and
// compare structurally.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// Inline patterns. Alt/anchor text excludes brackets, URLs exclude
// parentheses, so matches never nest or overlap.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`)
)

// Lex converts a raw text run into a flat sequence of typed inline spans.
// The five passes run in fixed order; each pass only rewrites spans still
// typed as plain text, leaving already-typed spans untouched.
func Lex(text string) ([]Span, error) {
	spans := []Span{{Kind: SpanText, Text: text}}

	var err error
	for _, pass := range []struct {
		delimiter string
		kind      SpanKind
	}{
		{"**", SpanBold},
		{"_", SpanItalic},
		{"`", SpanCode},
	} {
		spans, err = splitDelimiter(spans, pass.delimiter, pass.kind)
		if err != nil {
			return nil, err
		}
	}

	spans = extractImages(spans)
	spans = extractLinks(spans)
	return spans, nil
}

// splitDelimiter splits every plain-text span on the delimiter, alternating
// plain and kind-typed spans. The delimiter must alternate outside/inside
// content, so a valid split yields an odd number of parts; an even count
// means an unterminated delimiter. Empty parts are dropped.
func splitDelimiter(spans []Span, delimiter string, kind SpanKind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanText || !strings.Contains(span.Text, delimiter) {
			out = append(out, span)
			continue
		}

		parts := strings.Split(span.Text, delimiter)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: unclosed delimiter %q", ErrMarkdownSyntax, delimiter)
		}

		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, Span{Kind: SpanText, Text: part})
			} else {
				out = append(out, Span{Kind: kind, Text: part})
			}
		}
	}
	return out, nil
}

// extractImages pulls ![alt](url) patterns out of plain-text spans.
func extractImages(spans []Span) []Span {
	return extractPattern(spans, SpanImage)
}

// extractLinks pulls [text](url) patterns out of plain-text spans. A match
// immediately preceded by '!' is an image leftover and is not a link.
func extractLinks(spans []Span) []Span {
	return extractPattern(spans, SpanLink)
}

// extractPattern walks non-overlapping matches left to right, emitting
// plain spans for the text between matches and a typed span per match.
// Empty between-match text is dropped.
func extractPattern(spans []Span, kind SpanKind) []Span {
	pattern := imagePattern
	if kind == SpanLink {
		pattern = linkPattern
	}

	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanText {
			out = append(out, span)
			continue
		}

		matches := pattern.FindAllStringSubmatchIndex(span.Text, -1)
		pos := 0
		for _, m := range matches {
			start, end := m[0], m[1]
			if kind == SpanLink && start > 0 && span.Text[start-1] == '!' {
				continue
			}
			if start > pos {
				out = append(out, Span{Kind: SpanText, Text: span.Text[pos:start]})
			}
			out = append(out, Span{
				Kind: kind,
				Text: span.Text[m[2]:m[3]],
				URL:  span.Text[m[4]:m[5]],
			})
			pos = end
		}
		if pos == 0 {
			// No match consumed anything; pass the span through unchanged.
			out = append(out, span)
		} else if pos < len(span.Text) {
			out = append(out, Span{Kind: SpanText, Text: span.Text[pos:]})
		}
	}
	return out
}

// SpanNode maps an inline span to its HTML node.
func SpanNode(s Span) (Node, error) {
	switch s.Kind {
	case SpanText:
		return NewLeaf("", s.Text), nil
	case SpanBold:
		return NewLeaf("b", s.Text), nil
	case SpanItalic:
		return NewLeaf("i", s.Text), nil
	case SpanCode:
		return NewLeaf("code", s.Text), nil
	case SpanLink:
		attrs := []Attr{{Key: "href", Val: s.URL}}
		// The anchor text may legitimately be empty: the link pattern
		// accepts zero characters between the brackets. An empty anchor
		// still renders an element pair, <a href="u"></a>.
		if s.Text == "" {
			return &BranchNode{Tag: "a", Children: []Node{}, Attrs: attrs}, nil
		}
		return &LeafNode{Tag: "a", Value: s.Text, Attrs: attrs}, nil
	case SpanImage:
		return &LeafNode{
			Tag:   imgTag,
			Attrs: []Attr{{Key: "src", Val: s.URL}, {Key: "alt", Val: s.Text}},
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported span kind %v", ErrNodeConstraint, s.Kind)
	}
}

// lexNodes lexes text and converts every span to an HTML node.
func lexNodes(text string) ([]Node, error) {
	spans, err := Lex(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(spans))
	for _, s := range spans {
		node, err := SpanNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
