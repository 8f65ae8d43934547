package markdown

import "errors"

// Sentinel errors for markdown conversion.
var (
	// ErrMarkdownSyntax indicates malformed inline markup, such as a
	// delimiter that is opened but never closed. It aborts conversion of
	// the affected document only.
	ErrMarkdownSyntax = errors.New("invalid markdown syntax")

	// ErrNodeConstraint indicates an HTML node violating a structural
	// invariant at render time (missing value, tag, or children). This is
	// a logic defect in block assembly, not malformed user input.
	ErrNodeConstraint = errors.New("invalid html node")

	// ErrTitleNotFound indicates a document with no level-1 heading.
	ErrTitleNotFound = errors.New("no level-1 heading found")
)
