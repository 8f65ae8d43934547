package markdown

import (
	"fmt"
	"strings"
)

// imgTag is the only void element the assembler emits. Image leaves render
// self-closing and carry no textual value.
const imgTag = "img"

// Attr is a single HTML attribute. Attributes are kept in a slice rather
// than a map so rendering order is insertion order, never sorted.
type Attr struct {
	Key string
	Val string
}

// Node is an immutable HTML tree element. Rendering is a pure function over
// the tree; it never mutates the node.
type Node interface {
	// ToHTML serializes the node and its subtree to an HTML string.
	// Returns ErrNodeConstraint if the node violates a structural
	// invariant.
	ToHTML() (string, error)
}

// LeafNode is an HTML element with no children. A leaf without a tag
// renders its value as-is; a leaf with a tag wraps the value in opening and
// closing tags, except img which renders self-closing.
type LeafNode struct {
	Tag   string
	Value string
	Attrs []Attr
}

// NewLeaf creates a leaf node without attributes.
func NewLeaf(tag, value string) *LeafNode {
	return &LeafNode{Tag: tag, Value: value}
}

// ToHTML renders the leaf. A tagged non-img leaf with an empty value is a
// constraint violation: the lexer never emits empty spans, so such a node
// can only come from a construction bug.
func (n *LeafNode) ToHTML() (string, error) {
	if n.Tag == "" {
		return n.Value, nil
	}
	if n.Tag == imgTag {
		return fmt.Sprintf("<%s%s />", n.Tag, renderAttrs(n.Attrs)), nil
	}
	if n.Value == "" {
		return "", fmt.Errorf("%w: leaf must have a value", ErrNodeConstraint)
	}
	return fmt.Sprintf("<%s%s>%s</%s>", n.Tag, renderAttrs(n.Attrs), n.Value, n.Tag), nil
}

// BranchNode is an HTML element with an ordered list of children and no own
// value. Each child is exclusively owned by its parent; the tree has no
// shared nodes and no cycles.
type BranchNode struct {
	Tag      string
	Children []Node
	Attrs    []Attr
}

// NewBranch creates a branch node without attributes. children may be
// empty but must not be nil when the node is rendered.
func NewBranch(tag string, children []Node) *BranchNode {
	return &BranchNode{Tag: tag, Children: children}
}

// ToHTML renders the opening tag, every child in order, and the closing
// tag. A nil Children slice is "absent" and fails; an empty non-nil slice
// renders an empty element.
func (n *BranchNode) ToHTML() (string, error) {
	if n.Tag == "" {
		return "", fmt.Errorf("%w: branch must have a tag", ErrNodeConstraint)
	}
	if n.Children == nil {
		return "", fmt.Errorf("%w: branch must have children", ErrNodeConstraint)
	}

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(n.Tag)
	sb.WriteString(renderAttrs(n.Attrs))
	sb.WriteString(">")
	for _, child := range n.Children {
		html, err := child.ToHTML()
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteString(">")
	return sb.String(), nil
}

// renderAttrs emits ` key="value"` for each attribute in insertion order.
// An empty attribute list yields an empty string.
func renderAttrs(attrs []Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, a := range attrs {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Val)
		sb.WriteString(`"`)
	}
	return sb.String()
}
