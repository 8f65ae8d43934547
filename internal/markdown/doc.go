// Package markdown converts a restricted Markdown dialect to an HTML node
// tree.
//
// The pipeline has three layers. SplitBlocks cuts a document into
// blank-line-delimited blocks. ClassifyBlock assigns each block a structural
// type (heading, fenced code, lists, quote, paragraph). Convert assembles
// each block into an HTML node, routing inline text through the span lexer
// (Lex) so bold, italic, code, image, and link markup become child nodes.
//
// Everything in this package is a pure function over strings: no I/O, no
// shared state, no goroutines. Independent documents can be converted
// concurrently by callers without coordination.
package markdown
