package markdown

import (
	"errors"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple title",
			input: "# Hello",
			want:  "Hello",
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "#   Hello World   ",
			want:  "Hello World",
		},
		{
			name:  "content below the title",
			input: "# My Title\n\nSome paragraph text\n\n## Subtitle",
			want:  "My Title",
		},
		{
			name:  "h2 before the h1 is skipped",
			input: "## Not H1\n\n# This is H1",
			want:  "This is H1",
		},
		{
			name:  "hash without space is skipped",
			input: "#NoSpace\n\n# Correct Title",
			want:  "Correct Title",
		},
		{
			name:  "special characters survive",
			input: "# Hello, World! @#$%",
			want:  "Hello, World! @#$%",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractTitle(tt.input)
			if err != nil {
				t.Fatalf("ExtractTitle() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTitle_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty document", input: ""},
		{name: "only h2", input: "## only h2"},
		{name: "h2 and h3 only", input: "## Only H2\n\n### Only H3\n\nSome paragraph"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ExtractTitle(tt.input)
			if !errors.Is(err, ErrTitleNotFound) {
				t.Errorf("ExtractTitle(%q) error = %v, want ErrTitleNotFound", tt.input, err)
			}
		})
	}
}
