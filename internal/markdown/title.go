package markdown

import "strings"

// ExtractTitle returns the text of the first level-1 heading in the
// document, with the marker and surrounding whitespace removed. Returns
// ErrTitleNotFound when no line is a "# " heading, including the empty
// document.
func ExtractTitle(doc string) (string, error) {
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# ")), nil
		}
	}
	return "", ErrTitleNotFound
}
