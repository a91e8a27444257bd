package conv

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \n\t ",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello world",
			expected: "Hello world",
		},
		{
			name:     "bold stripped",
			input:    "**bold** text",
			expected: "bold text",
		},
		{
			name:     "italic and inline code",
			input:    "*italic* and `code`",
			expected: "italic and code",
		},
		{
			name:     "link keeps label only",
			input:    "[Go](https://go.dev) is nice",
			expected: "Go is nice",
		},
		{
			name:     "unicode punctuation repaired",
			input:    "“smart quotes” and — dash…",
			expected: `"smart quotes" and -- dash...`,
		},
		{
			name:     "emoji dropped",
			input:    "hello \U0001F600 world",
			expected: "hello world",
		},
		{
			name:     "horizontal whitespace collapsed",
			input:    "too    many\tspaces",
			expected: "too many spaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanLeavesNoMarkdownSyntax(t *testing.T) {
	inputs := []string{
		"**bold** text",
		"***bold italic*** mix",
		"a `snippet` of code",
		"~~gone~~ kept",
	}

	for _, input := range inputs {
		got := Clean(input)
		for _, marker := range []string{"*", "`", "~~", "#"} {
			if strings.Contains(got, marker) {
				t.Errorf("Clean(%q) = %q, still contains %q", input, got, marker)
			}
		}
	}
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"***bold italic***", "bold italic"},
		{"# Info", "Info"},
		{"> quoted line", "quoted line"},
		{"![alt](img.png)", "alt"},
		{"no markdown at all", "no markdown at all"},
	}

	for _, tt := range tests {
		if got := StripMarkdown(tt.input); got != tt.expected {
			t.Errorf("StripMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold text",
			input:    "**bold**",
			expected: "<strong>bold</strong>\n",
		},
		{
			name:     "inline code",
			input:    "`code`",
			expected: "<code>code</code>\n",
		},
		{
			name:     "script tags sanitized",
			input:    "<script>alert('xss')</script>",
			expected: "\n",
		},
		{
			name:     "header tags stripped",
			input:    "# Info",
			expected: "Info\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			if got != tt.expected {
				t.Errorf("MarkdownToTelegramHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
