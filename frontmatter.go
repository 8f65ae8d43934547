package md2site

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// parseFrontMatter extracts the optional metadata header from a document
// and returns the metadata plus the Markdown body without delimiters. A
// document with no front matter passes through untouched with zero-value
// metadata.
func parseFrontMatter(source string) (PageMeta, string, error) {
	var meta PageMeta
	body, err := frontmatter.Parse(strings.NewReader(source), &meta)
	if err != nil {
		return PageMeta{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return meta, string(body), nil
}
