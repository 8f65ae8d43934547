package markdown

import (
	"fmt"
	"strings"
)

// BlockType is the structural type of a blank-line-delimited block.
type BlockType int

// Block types, in classification precedence order.
const (
	BlockParagraph BlockType = iota
	BlockHeading
	BlockCode
	BlockUnorderedList
	BlockOrderedList
	BlockQuote
)

// String returns the block type name.
func (t BlockType) String() string {
	switch t {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockCode:
		return "code"
	case BlockUnorderedList:
		return "unordered_list"
	case BlockOrderedList:
		return "ordered_list"
	case BlockQuote:
		return "quote"
	default:
		return fmt.Sprintf("BlockType(%d)", int(t))
	}
}

// fence is the triple-backtick marker delimiting a code block.
const fence = "```"

// CodeRenderer turns a fenced code block into an HTML node. info is the
// text after the opening fence marker (usually a language name, often
// empty); code is the fence content, normalized to end with exactly one
// newline when non-empty. A nil CodeRenderer selects DefaultCodeRenderer.
type CodeRenderer func(info, code string) (Node, error)

// DefaultCodeRenderer wraps the raw fence content in <pre><code>. The
// content is not inline-lexed. An empty fence renders an empty code
// element.
func DefaultCodeRenderer(info, code string) (Node, error) {
	if code == "" {
		return NewBranch("pre", []Node{NewBranch("code", []Node{})}), nil
	}
	return NewBranch("pre", []Node{NewLeaf("code", code)}), nil
}

// SplitBlocks splits a document into trimmed, non-empty blocks on
// blank-line separators.
func SplitBlocks(doc string) []string {
	var blocks []string
	for _, raw := range strings.Split(doc, "\n\n") {
		block := strings.TrimSpace(raw)
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// ClassifyBlock determines a block's structural type. Classification is
// computed fresh from the raw text; blocks carry no parsed state.
func ClassifyBlock(block string) BlockType {
	lines := strings.Split(block, "\n")

	if headingLevel(lines[0]) > 0 {
		return BlockHeading
	}
	if strings.HasPrefix(block, fence) && strings.HasSuffix(block, fence) {
		return BlockCode
	}
	if allLines(lines, func(l string) bool {
		return strings.HasPrefix(l, "- ") || strings.HasPrefix(l, "* ")
	}) {
		return BlockUnorderedList
	}
	if isOrderedList(lines) {
		return BlockOrderedList
	}
	if allLines(lines, func(l string) bool { return strings.HasPrefix(l, ">") }) {
		return BlockQuote
	}
	return BlockParagraph
}

// headingLevel returns 1-6 if the line is a heading (that many '#' followed
// by a space), or 0 otherwise. Seven or more '#' or a missing space
// disqualify the line.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return 0
	}
	if level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// isOrderedList reports whether line i starts with the literal prefix
// "{i+1}. " for every line. Numbering must be strictly sequential from 1;
// a skipped number makes the block a paragraph, not an error.
func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, fmt.Sprintf("%d. ", i+1)) {
			return false
		}
	}
	return true
}

func allLines(lines []string, match func(string) bool) bool {
	for _, line := range lines {
		if !match(line) {
			return false
		}
	}
	return true
}

// assembleBlock converts a classified block into an HTML node, routing leaf
// text through the inline lexer.
func assembleBlock(block string, blockType BlockType, code CodeRenderer) (Node, error) {
	switch blockType {
	case BlockHeading:
		return assembleHeading(block)
	case BlockCode:
		return assembleCode(block, code)
	case BlockUnorderedList:
		return assembleList(block, "ul", stripBullet)
	case BlockOrderedList:
		return assembleList(block, "ol", stripOrdinal)
	case BlockQuote:
		return assembleQuote(block)
	case BlockParagraph:
		return assembleParagraph(block)
	default:
		return nil, fmt.Errorf("%w: unsupported block type %v", ErrNodeConstraint, blockType)
	}
}

func assembleHeading(block string) (Node, error) {
	level := headingLevel(strings.SplitN(block, "\n", 2)[0])
	text := strings.TrimSpace(strings.TrimLeft(block, "#"))
	children, err := lexNodes(text)
	if err != nil {
		return nil, err
	}
	return NewBranch(fmt.Sprintf("h%d", level), children), nil
}

// assembleCode strips the fence lines and hands the raw content to the code
// renderer. Non-empty content gets exactly one trailing newline so
// single-line and multi-line blocks render consistently.
func assembleCode(block string, code CodeRenderer) (Node, error) {
	if code == nil {
		code = DefaultCodeRenderer
	}

	lines := strings.Split(block, "\n")
	info := strings.TrimSpace(strings.TrimPrefix(lines[0], fence))

	var content string
	if len(lines) > 2 {
		content = strings.Join(lines[1:len(lines)-1], "\n")
	}
	if content != "" {
		content += "\n"
	}
	return code(info, content)
}

func assembleList(block, tag string, strip func(string) string) (Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]Node, 0, len(lines))
	for _, line := range lines {
		children, err := lexNodes(strip(line))
		if err != nil {
			return nil, err
		}
		items = append(items, NewBranch("li", children))
	}
	return NewBranch(tag, items), nil
}

// stripBullet removes the 2-character "- " or "* " prefix.
func stripBullet(line string) string {
	return line[2:]
}

// stripOrdinal removes everything up to and including the first ". ".
func stripOrdinal(line string) string {
	if i := strings.Index(line, ". "); i >= 0 {
		return line[i+2:]
	}
	return line
}

// assembleQuote strips the leading '>' from each line and joins the lines
// with a single space: multi-line quotes collapse to one paragraph-like
// unit.
func assembleQuote(block string) (Node, error) {
	lines := strings.Split(block, "\n")
	stripped := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped = append(stripped, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), ">")))
	}
	children, err := lexNodes(strings.Join(stripped, " "))
	if err != nil {
		return nil, err
	}
	return NewBranch("blockquote", children), nil
}

func assembleParagraph(block string) (Node, error) {
	text := strings.Join(strings.Split(block, "\n"), " ")
	children, err := lexNodes(text)
	if err != nil {
		return nil, err
	}
	return NewBranch("p", children), nil
}

// Convert converts a whole document into a root <div> node whose children
// are the assembled blocks in document order. code customizes fenced-block
// rendering; nil selects DefaultCodeRenderer.
func Convert(doc string, code CodeRenderer) (*BranchNode, error) {
	blocks := SplitBlocks(doc)
	children := make([]Node, 0, len(blocks))
	for _, block := range blocks {
		node, err := assembleBlock(block, ClassifyBlock(block), code)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", excerpt(block), err)
		}
		children = append(children, node)
	}
	return NewBranch("div", children), nil
}

// ConvertDocument converts a document with the default fenced-code
// rendering.
func ConvertDocument(doc string) (*BranchNode, error) {
	return Convert(doc, nil)
}

// excerpt truncates a block for error messages.
func excerpt(block string) string {
	const max = 40
	if len(block) <= max {
		return block
	}
	return block[:max] + "..."
}
