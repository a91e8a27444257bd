package conv

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	tgExtensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	tgHTMLFlags  = html.CommonFlags | html.HrefTargetBlank
	tgPolicy     = bluemonday.NewPolicy()
)

func init() {
	// Allowed tags https://core.telegram.org/bots/api#html-style
	tgPolicy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	tgPolicy.AllowAttrs("href").OnElements("a")
	tgPolicy.AllowAttrs("class").OnElements("code")
}

// MarkdownToTelegramHTML renders markdown into the HTML subset Telegram
// accepts for formatted messages.
func MarkdownToTelegramHTML(md []byte) string {
	p := parser.NewWithExtensions(tgExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: tgHTMLFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	sanitized := tgPolicy.SanitizeBytes(unsafeHTML)

	return string(sanitized)
}
