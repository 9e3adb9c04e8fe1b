package blog

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "heading",
			input:    "# Title",
			contains: "<h1",
		},
		{
			name:     "emphasis",
			input:    "some **bold** text",
			contains: "<strong>bold</strong>",
		},
		{
			name:     "gfm table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: "<table>",
		},
		{
			name:     "link",
			input:    "[site](https://example.com)",
			contains: `href="https://example.com"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderMarkdown(tt.input)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("RenderMarkdown(%q) = %q, want it to contain %q", tt.input, got, tt.contains)
			}
		})
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		block string
	}{
		{
			name:  "script tag",
			input: "hello <script>alert(1)</script>",
			block: "<script>",
		},
		{
			name:  "event handler",
			input: `<img src="x" onerror="alert(1)">`,
			block: "onerror",
		},
		{
			name:  "javascript url",
			input: "[x](javascript:alert(1))",
			block: "javascript:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderMarkdown(tt.input)
			if strings.Contains(got, tt.block) {
				t.Errorf("RenderMarkdown(%q) = %q, must not contain %q", tt.input, got, tt.block)
			}
		})
	}
}
