package history

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/jarvisbot/internal/core"
)

// summaryMaxLen is the length an old turn is condensed to.
const summaryMaxLen = 200

var (
	tk     *tiktoken.Tiktoken
	tkErr  error
	tkOnce sync.Once
)

// History is an ordered sequence of conversation turns owned by the caller.
// Invariant: at most one system turn, always at index 0 when present.
// It is not safe for concurrent use; each session gets its own handle.
type History struct {
	msgs []core.Message
}

func New() *History {
	return &History{}
}

// EnsureSystem forces prompt into the system slot. An existing system turn
// is overwritten, discarding caller customization in favor of persona
// consistency.
func (h *History) EnsureSystem(prompt string) {
	if prompt == "" {
		return
	}
	if len(h.msgs) == 0 || h.msgs[0].Role != core.RoleSystem {
		h.msgs = append([]core.Message{{Role: core.RoleSystem, Content: prompt}}, h.msgs...)
		return
	}
	h.msgs[0].Content = prompt
}

func (h *History) Append(role, content string) {
	h.msgs = append(h.msgs, core.Message{Role: role, Content: content})
}

// Messages returns a copy; mutating the result does not affect the history.
func (h *History) Messages() []core.Message {
	out := make([]core.Message, len(h.msgs))
	copy(out, h.msgs)
	return out
}

func (h *History) Len() int {
	return len(h.msgs)
}

func (h *History) Clear() {
	h.msgs = nil
}

// Trim bounds the payload sent to providers: the system turn stays intact,
// the newest maxMessages turns stay intact, everything older is condensed
// to summaryMaxLen characters. Idempotent once the history fits.
func (h *History) Trim(maxMessages int) {
	if len(h.msgs) == 0 || maxMessages < 0 {
		return
	}

	var sys *core.Message
	rest := h.msgs
	if h.msgs[0].Role == core.RoleSystem {
		sys = &h.msgs[0]
		rest = h.msgs[1:]
	}

	if len(rest) > maxMessages {
		cut := len(rest) - maxMessages
		for i := 0; i < cut; i++ {
			rest[i].Content = Summarize(rest[i].Content, summaryMaxLen)
		}
	}

	if sys != nil {
		h.msgs = append([]core.Message{*sys}, rest...)
	} else {
		h.msgs = rest
	}
}

// Summarize truncates text to maxLen runes at the last word boundary,
// appending an ellipsis when anything was dropped.
func Summarize(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	// Output of a previous pass; re-truncating would shift the word
	// boundary and break idempotency.
	if strings.HasSuffix(text, "...") && len(runes) <= maxLen+3 {
		return text
	}

	truncated := string(runes[:maxLen])
	if idx := strings.LastIndex(truncated, " "); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + "..."
}

// TokenCount reports the cl100k_base token footprint of the whole history.
// Diagnostics only; trimming is character-based.
func (h *History) TokenCount() (int, error) {
	if len(h.msgs) == 0 {
		return 0, nil
	}
	enc, err := getTokenizer()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, m := range h.msgs {
		total += len(enc.Encode(m.Content, nil, nil))
	}
	return total, nil
}

func getTokenizer() (*tiktoken.Tiktoken, error) {
	tkOnce.Do(func() {
		tk, tkErr = tiktoken.GetEncoding("cl100k_base")
	})
	if tkErr != nil {
		return nil, fmt.Errorf("failed to load tokenizer: %w", tkErr)
	}
	return tk, nil
}
