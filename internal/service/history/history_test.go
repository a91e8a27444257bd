package history

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/sandevgo/jarvisbot/internal/core"
)

func TestEnsureSystem(t *testing.T) {
	t.Run("inserts when absent", func(t *testing.T) {
		h := New()
		h.Append(core.RoleUser, "hi")
		h.EnsureSystem("persona")

		msgs := h.Messages()
		if msgs[0].Role != core.RoleSystem || msgs[0].Content != "persona" {
			t.Errorf("expected system turn first, got %+v", msgs[0])
		}
		if len(msgs) != 2 {
			t.Errorf("expected 2 turns, got %d", len(msgs))
		}
	})

	t.Run("overwrites existing prompt", func(t *testing.T) {
		h := New()
		h.EnsureSystem("old persona")
		h.Append(core.RoleUser, "hi")
		h.EnsureSystem("new persona")

		msgs := h.Messages()
		if msgs[0].Content != "new persona" {
			t.Errorf("expected overwrite, got %q", msgs[0].Content)
		}
		if len(msgs) != 2 {
			t.Errorf("expected 2 turns, got %d", len(msgs))
		}
	})
}

func TestTrimPreservesSystemAndCount(t *testing.T) {
	const maxMessages = 12

	h := New()
	h.EnsureSystem("persona")
	long := strings.Repeat("word ", 100)
	for i := 0; i < 20; i++ {
		h.Append(core.RoleUser, fmt.Sprintf("question %d %s", i, long))
		h.Append(core.RoleAssistant, fmt.Sprintf("answer %d %s", i, long))
	}

	h.Trim(maxMessages)
	msgs := h.Messages()

	if msgs[0].Role != core.RoleSystem {
		t.Fatalf("system turn not first after trim: %+v", msgs[0])
	}
	// Overflow is summarized, never dropped.
	if len(msgs) != 1+40 {
		t.Fatalf("expected 41 turns, got %d", len(msgs))
	}

	for i, m := range msgs[1 : len(msgs)-maxMessages] {
		if len([]rune(m.Content)) > summaryMaxLen+3 {
			t.Errorf("old turn %d not summarized: %d runes", i, len([]rune(m.Content)))
		}
		if !strings.HasSuffix(m.Content, "...") {
			t.Errorf("old turn %d missing ellipsis: %q", i, m.Content[len(m.Content)-10:])
		}
	}

	for i, m := range msgs[len(msgs)-maxMessages:] {
		if !strings.Contains(m.Content, long[:40]) {
			t.Errorf("recent turn %d was modified", i)
		}
	}
}

func TestTrimIdempotent(t *testing.T) {
	h := New()
	h.EnsureSystem("persona")
	for i := 0; i < 30; i++ {
		h.Append(core.RoleUser, strings.Repeat("alpha beta gamma ", 30))
	}

	h.Trim(12)
	first := h.Messages()

	h.Trim(12)
	second := h.Messages()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("trim is not idempotent")
	}
}

func TestTrimNoSystemTurn(t *testing.T) {
	h := New()
	for i := 0; i < 5; i++ {
		h.Append(core.RoleUser, "short")
	}

	h.Trim(12)

	if h.Len() != 5 {
		t.Errorf("expected untouched history, got %d turns", h.Len())
	}
}

func TestTokenCount(t *testing.T) {
	h := New()

	n, err := h.TokenCount()
	if err != nil {
		t.Fatalf("empty history should not need the tokenizer: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 tokens for empty history, got %d", n)
	}

	h.Append(core.RoleUser, "hello world")
	first, err := h.TokenCount()
	if err != nil {
		t.Skipf("cl100k_base encoding unavailable: %v", err)
	}
	if first == 0 {
		t.Error("expected a non-zero count for a non-empty history")
	}

	h.Append(core.RoleAssistant, "a considerably longer answer about the state of the world")
	second, err := h.TokenCount()
	if err != nil {
		t.Fatalf("tokenizer failed after loading once: %v", err)
	}
	if second <= first {
		t.Errorf("count did not grow with the history: %d then %d", first, second)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, got string)
	}{
		{
			name:  "short text unchanged",
			input: "hello world",
			check: func(t *testing.T, got string) {
				if got != "hello world" {
					t.Errorf("got %q", got)
				}
			},
		},
		{
			name:  "long text cut at word boundary",
			input: strings.Repeat("abcdefghi ", 30),
			check: func(t *testing.T, got string) {
				if !strings.HasSuffix(got, "...") {
					t.Errorf("missing ellipsis: %q", got)
				}
				if strings.HasSuffix(strings.TrimSuffix(got, "..."), " ") {
					t.Errorf("dangling space before ellipsis: %q", got)
				}
				if len([]rune(got)) > summaryMaxLen+3 {
					t.Errorf("too long: %d runes", len([]rune(got)))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Summarize(tt.input, summaryMaxLen))
		})
	}
}
