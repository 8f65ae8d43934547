package md2site

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGeneratePage_EmptyMarkdown(t *testing.T) {
	t.Parallel()

	svc := New()
	_, err := svc.GeneratePage(context.Background(), Input{})
	if !errors.Is(err, ErrEmptyMarkdown) {
		t.Errorf("error = %v, want ErrEmptyMarkdown", err)
	}
}

func TestGeneratePage_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New()
	_, err := svc.GeneratePage(ctx, Input{Markdown: "# Hello"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGeneratePage_FullDocument(t *testing.T) {
	t.Parallel()

	md := `# Tolkien Fan Club

![JRR Tolkien sitting](/images/tolkien.png)

Here's the deal, **I like Tolkien**.

- Firstly
- Secondly

> "I am in fact a Hobbit in all but size."
`

	svc := New()
	page, err := svc.GeneratePage(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.Title != "Tolkien Fan Club" {
		t.Errorf("Title = %q, want Tolkien Fan Club", page.Title)
	}

	wantFragments := []string{
		"<h1>Tolkien Fan Club</h1>",
		`<img src="/images/tolkien.png" alt="JRR Tolkien sitting" />`,
		"<b>I like Tolkien</b>",
		"<ul><li>Firstly</li><li>Secondly</li></ul>",
		"<blockquote>",
	}
	for _, want := range wantFragments {
		if !strings.Contains(page.Content, want) {
			t.Errorf("Content missing %q\nContent: %s", want, page.Content)
		}
	}

	// The embedded default template wraps the fragment into a full page.
	if !strings.Contains(page.Document, "<!DOCTYPE html>") {
		t.Errorf("Document is not a full page: %s", page.Document)
	}
	if !strings.Contains(page.Document, "<title>Tolkien Fan Club</title>") {
		t.Errorf("Document missing title element: %s", page.Document)
	}
	if !strings.Contains(page.Document, page.Content) {
		t.Error("Document does not embed the content fragment")
	}
}

func TestGeneratePage_TemplateSubstitution(t *testing.T) {
	t.Parallel()

	tmpl := "<html><head><title>{{ Title }}</title></head><body>{{ Content }}</body></html>"
	svc := New(WithTemplate(tmpl))

	page, err := svc.GeneratePage(context.Background(), Input{Markdown: "# Hi\n\nBody text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<html><head><title>Hi</title></head><body><div><h1>Hi</h1><p>Body text</p></div></body></html>"
	if page.Document != want {
		t.Errorf("Document = %q, want %q", page.Document, want)
	}
}

func TestGeneratePage_InputTemplateOverride(t *testing.T) {
	t.Parallel()

	svc := New(WithTemplate("service: {{ Content }}"))
	page, err := svc.GeneratePage(context.Background(), Input{
		Markdown: "# Hi",
		Template: "input: {{ Content }}",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(page.Document, "input: ") {
		t.Errorf("Document = %q, want input template applied", page.Document)
	}
}

func TestGeneratePage_FrontMatterTitleWins(t *testing.T) {
	t.Parallel()

	md := `---
title: From Front Matter
tags: [go, web]
draft: true
---

# From Heading

Body.
`
	svc := New()
	page, err := svc.GeneratePage(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Title != "From Front Matter" {
		t.Errorf("Title = %q, want From Front Matter", page.Title)
	}
	if !page.Meta.Draft {
		t.Error("Meta.Draft = false, want true")
	}
	if len(page.Meta.Tags) != 2 || page.Meta.Tags[0] != "go" {
		t.Errorf("Meta.Tags = %v, want [go web]", page.Meta.Tags)
	}
	// Front matter must not leak into the rendered body.
	if strings.Contains(page.Content, "From Front Matter") {
		t.Errorf("Content leaks front matter: %s", page.Content)
	}
}

func TestGeneratePage_TitleResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		opts     []Option
		want     string
		wantErr  error
	}{
		{
			name:     "heading title",
			markdown: "# Hello\n\nbody",
			want:     "Hello",
		},
		{
			name:     "default title fallback",
			markdown: "just a paragraph",
			opts:     []Option{WithDefaultTitle("Untitled")},
			want:     "Untitled",
		},
		{
			name:     "no title anywhere",
			markdown: "just a paragraph",
			wantErr:  ErrTitleNotFound,
		},
		{
			name:     "heading beats default",
			markdown: "# Real Title",
			opts:     []Option{WithDefaultTitle("Untitled")},
			want:     "Real Title",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := New(tt.opts...)
			page, err := svc.GeneratePage(context.Background(), Input{Markdown: tt.markdown})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.Title != tt.want {
				t.Errorf("Title = %q, want %q", page.Title, tt.want)
			}
		})
	}
}

func TestGeneratePage_DatePlaceholder(t *testing.T) {
	t.Parallel()

	md := "---\ndate: 2024-03-09T00:00:00Z\n---\n\n# Post\n\nbody"
	tmpl := "{{ Title }} ({{ Date }}): {{ Content }}"

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"default iso format", nil, "Post (2024-03-09): "},
		{"preset format", []Option{WithDateFormat("long")}, "Post (March 9, 2024): "},
		{"token format", []Option{WithDateFormat("DD/MM/YYYY")}, "Post (09/03/2024): "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := append([]Option{WithTemplate(tmpl)}, tt.opts...)
			page, err := New(opts...).GeneratePage(context.Background(), Input{Markdown: md})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(page.Document, tt.want) {
				t.Errorf("Document = %q, want prefix %q", page.Document, tt.want)
			}
		})
	}
}

func TestGeneratePage_DatePlaceholderZeroDate(t *testing.T) {
	t.Parallel()

	svc := New(WithTemplate("[{{ Date }}] {{ Content }}"))
	page, err := svc.GeneratePage(context.Background(), Input{Markdown: "# T"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(page.Document, "[] ") {
		t.Errorf("Document = %q, want empty date substitution", page.Document)
	}
}

func TestGeneratePage_SyntaxErrorSurfaces(t *testing.T) {
	t.Parallel()

	svc := New()
	_, err := svc.GeneratePage(context.Background(), Input{Markdown: "# T\n\nbroken **bold"})
	if !errors.Is(err, ErrMarkdownSyntax) {
		t.Errorf("error = %v, want ErrMarkdownSyntax", err)
	}
}

func TestGeneratePage_Highlighting(t *testing.T) {
	t.Parallel()

	md := "# Code\n\n```go\nfunc main() {}\n```"
	svc := New(WithHighlighting("monokai"))

	page, err := svc.GeneratePage(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Inline styles mean no stylesheet is needed; loose assertion since the
	// exact markup belongs to chroma.
	if !strings.Contains(page.Content, "style=") {
		t.Errorf("Content has no inline styles: %s", page.Content)
	}
	if !strings.Contains(page.Content, "main") {
		t.Errorf("Content lost the code text: %s", page.Content)
	}
}

func TestGeneratePage_HighlightingFallsBackWithoutLanguage(t *testing.T) {
	t.Parallel()

	md := "# Code\n\n```\nplain text\n```"
	svc := New(WithHighlighting("monokai"))

	page, err := svc.GeneratePage(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(page.Content, "<pre><code>plain text\n</code></pre>") {
		t.Errorf("Content = %q, want plain pre/code fallback", page.Content)
	}
}

func TestGeneratePage_CustomCodeRenderer(t *testing.T) {
	t.Parallel()

	svc := New(WithCodeRenderer(func(info, code string) (string, bool, error) {
		if info != "go" {
			return "", false, nil
		}
		return "<pre class=\"go\">" + code + "</pre>", true, nil
	}))

	md := "# T\n\n```go\nx := 1\n```"
	page, err := svc.GeneratePage(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(page.Content, `<pre class="go">x := 1`) {
		t.Errorf("Content = %q, want custom rendering", page.Content)
	}
}

func TestGeneratePage_CustomCodeRendererError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("renderer exploded")
	svc := New(WithCodeRenderer(func(string, string) (string, bool, error) {
		return "", false, wantErr
	}))

	_, err := svc.GeneratePage(context.Background(), Input{Markdown: "# T\n\n```go\nx\n```"})
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want renderer error", err)
	}
}

func TestService_ConcurrentUse(t *testing.T) {
	t.Parallel()

	svc := New(WithDefaultTitle("Untitled"))
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := svc.GeneratePage(context.Background(), Input{Markdown: "# T\n\nbody"})
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent generation failed: %v", err)
		}
	}
}
