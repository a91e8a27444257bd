package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sandevgo/jarvisbot/internal/config"
	"github.com/sandevgo/jarvisbot/internal/core"
	"github.com/sandevgo/jarvisbot/pkg/conv"
)

// CodeAssist talks to a code-assistant endpoint that mimics an editor
// extension rather than the OpenAI dialect. The request carries the
// extension handshake fields and the response always streams.
type CodeAssist struct {
	baseProvider
}

func NewCodeAssist(cfg *config.CodeAssistConfig) *CodeAssist {
	return &CodeAssist{
		baseProvider: newBaseProvider(cfg.Endpoint, "", cfg.Model, cfg.Timeout),
	}
}

func (c *CodeAssist) Name() string { return "codeassist" }

func (c *CodeAssist) Generate(ctx context.Context, hist core.History, input string, opts core.Options) (core.Result, error) {
	hist.EnsureSystem(core.DefaultSystemPrompt)

	payload := map[string]any{
		"additional_extension_context": "",
		"allow_magic_buttons":          true,
		"is_vscode_extension":          true,
		"message_history":              append(hist.Messages(), core.Message{Role: core.RoleUser, Content: input}),
		"requested_model":              c.model,
		"user_input":                   input,
	}

	// The endpoint rejects clients that identify themselves.
	headers := map[string]string{
		"User-Agent": "",
		"Accept":     "*/*",
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "", payload, headers)
	if err != nil {
		return core.Result{}, &core.TransientError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return core.Result{}, &core.TransientError{
			Provider: c.Name(),
			Err:      fmt.Errorf("http %d: %s", resp.StatusCode, string(data)),
		}
	}

	seg := conv.NewSegmenter(opts.OnSentence)
	raw, err := readStream(ctx, c.Name(), resp.Body, seg)
	if err != nil {
		return core.Result{}, err
	}
	if strings.TrimSpace(raw) == "" {
		return core.Result{}, &core.TransientError{Provider: c.Name(), Err: errors.New("empty stream")}
	}
	return core.Result{Raw: raw, Text: conv.Clean(raw), Sentences: seg.Sentences()}, nil
}
