// Package md2site generates static HTML pages from Markdown documents.
//
// # Quick Start
//
// Create a service and generate a page:
//
//	svc := md2site.New()
//	page, err := svc.GeneratePage(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(page.Document), 0644)
//
// The result carries the page title, the HTML content fragment, and the
// full document produced by substituting both into a shared page template.
//
// # Generation Pipeline
//
//  1. Front matter parsing (optional YAML/TOML header)
//  2. Markdown to HTML conversion (internal block/inline engine)
//  3. Title resolution (front matter, first H1, or configured default)
//  4. Template substitution ({{ Title }} and {{ Content }} placeholders)
//
// The Markdown dialect covers headings, paragraphs, fenced code blocks,
// unordered and ordered lists, block quotes, and inline bold, italic, code,
// images, and links. It is deliberately not full CommonMark: tables, nested
// lists, reference-style links, and raw HTML passthrough are not handled.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2site.New(
//	    md2site.WithTemplate(tmpl),
//	    md2site.WithDefaultTitle("Untitled"),
//	    md2site.WithHighlighting("monokai"),
//	)
//
// # Parallel Processing
//
// A Service is immutable after construction and the conversion engine is
// purely functional, so a single Service may be shared across goroutines to
// generate independent pages concurrently.
package md2site
