package conv

import (
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	cleanExtensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	cleanPolicy     = bluemonday.UGCPolicy()

	reBlankLines = regexp.MustCompile(`\n{2,}`)
	reHSpace     = regexp.MustCompile(`[ \t]{2,}`)

	reMDImage  = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	reMDLink   = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	reMDFence  = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\n?(.*?)```")
	reMDEmph   = regexp.MustCompile(`(\*{1,3}|_{1,3}|~~)(\S(?:.*?\S)?)(\*{1,3}|_{1,3}|~~)`)
	reMDCode   = regexp.MustCompile("`([^`]*)`")
	reMDHeader = regexp.MustCompile(`(?m)^#{1,6}[ \t]*`)
	reMDQuote  = regexp.MustCompile(`(?m)^>[ \t]?`)
	reMDHRule  = regexp.MustCompile(`(?m)^[ \t]*([-*_][ \t]*){3,}$`)
)

// unicodeRepairs maps common mis-encoded punctuation onto ASCII so TTS
// engines do not read artifacts aloud.
var unicodeRepairs = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "...",
	"•", "-",
	"—", "--",
	"–", "-",
	" ", " ",
)

// Clean converts raw model output into TTS-ready plain text. It never
// returns an error: a garbled or empty result is acceptable output.
//
// Pipeline: render markdown to HTML, sanitize, extract visible text with
// space-joined inline elements, re-strip residual markdown syntax, repair
// mis-encoded punctuation, drop unprintable characters, normalize
// whitespace.
func Clean(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := extractText(raw)

	// Second pass over constructs the renderer left as literal characters.
	// An empty result here means the stripper ate real content; fall back
	// to the extracted text.
	if stripped := StripMarkdown(text); strings.TrimSpace(stripped) != "" {
		text = stripped
	}

	text = unicodeRepairs.Replace(text)
	text = dropUnprintable(text)

	text = reBlankLines.ReplaceAllString(text, "\n\n")
	text = reHSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func extractText(raw string) string {
	p := parser.NewWithExtensions(cleanExtensions)
	// Smartypants would reintroduce the very typography the repair table
	// removes, so render with no flags.
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.FlagsNone})
	unsafeHTML := markdown.Render(p.Parse([]byte(raw)), renderer)

	sanitized := cleanPolicy.SanitizeBytes(unsafeHTML)

	text, err := html2text.FromString(string(sanitized), html2text.Options{OmitLinks: true})
	if err != nil {
		// Keep the raw input rather than losing the response.
		return raw
	}
	return text
}

// StripMarkdown removes markdown syntax from text while preserving the
// visible content. Purely lexical, safe on non-markdown input.
func StripMarkdown(text string) string {
	text = reMDFence.ReplaceAllString(text, "$1")
	text = reMDImage.ReplaceAllString(text, "$1")
	text = reMDLink.ReplaceAllString(text, "$1")
	text = reMDCode.ReplaceAllString(text, "$1")
	// Nested emphasis needs repeated passes, e.g. ***bold italic***.
	for i := 0; i < 3; i++ {
		next := reMDEmph.ReplaceAllString(text, "$2")
		if next == text {
			break
		}
		text = next
	}
	text = reMDHeader.ReplaceAllString(text, "")
	text = reMDQuote.ReplaceAllString(text, "")
	text = reMDHRule.ReplaceAllString(text, "")
	return text
}

// dropUnprintable removes everything outside printable ASCII and Latin-1,
// keeping newlines, tabs and a short allow-list of typographic punctuation
// (which unicodeRepairs has normally rewritten already).
func dropUnprintable(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r >= 0x20 && r <= 0x7E:
			b.WriteRune(r)
		case r >= 0xA0 && r <= 0xFF:
			b.WriteRune(r)
		case r == '–' || r == '—' || r == '‘' || r == '’' || r == '“' || r == '”':
			b.WriteRune(r)
		}
	}
	return b.String()
}
