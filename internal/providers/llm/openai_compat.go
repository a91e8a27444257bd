package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sandevgo/jarvisbot/internal/core"
	"github.com/sandevgo/jarvisbot/pkg/conv"
)

// OpenAICompatible speaks the /v1/chat/completions dialect shared by most
// hosted inference gateways. Per-provider quirks live in the config: auth
// header shape, extra headers, extra payload fields, default options.
type OpenAICompatible struct {
	baseProvider
	name         string
	path         string
	authHeader   string
	authPrefix   string
	extraHeaders map[string]string
	extraPayload map[string]any
	defaults     core.Options
}

type OpenAICompatibleConfig struct {
	Name         string
	BaseURL      string
	APIKey       string
	Path         string        // defaults to "/v1/chat/completions"
	AuthHeader   string        // e.g., "Authorization"
	AuthPrefix   string        // e.g., "Bearer "
	Timeout      time.Duration // defaults to defaultTimeout
	ExtraHeaders map[string]string
	ExtraPayload map[string]any
	Defaults     core.Options
}

func NewOpenAICompatible(cfg OpenAICompatibleConfig) *OpenAICompatible {
	path := cfg.Path
	if path == "" {
		path = "/v1/chat/completions"
	}
	return &OpenAICompatible{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.APIKey, cfg.Defaults.Model, cfg.Timeout),
		name:         cfg.Name,
		path:         path,
		authHeader:   cfg.AuthHeader,
		authPrefix:   cfg.AuthPrefix,
		extraHeaders: cfg.ExtraHeaders,
		extraPayload: cfg.ExtraPayload,
		defaults:     cfg.Defaults,
	}
}

func (o *OpenAICompatible) Name() string { return o.name }

func (o *OpenAICompatible) Generate(ctx context.Context, hist core.History, input string, opts core.Options) (core.Result, error) {
	hist.EnsureSystem(core.DefaultSystemPrompt)
	msgs := append(hist.Messages(), core.Message{Role: core.RoleUser, Content: input})

	opts = mergeOptions(o.defaults, opts)
	payload := chatPayload(msgs, opts)
	for k, v := range o.extraPayload {
		payload[k] = v
	}

	headers := make(map[string]string)
	if o.authHeader != "" && o.apiKey != "" {
		headers[o.authHeader] = o.authPrefix + o.apiKey
	}
	for k, v := range o.extraHeaders {
		headers[k] = v
	}

	resp, err := o.doRequest(ctx, http.MethodPost, o.path, payload, headers)
	if err != nil {
		return core.Result{}, &core.TransientError{Provider: o.name, Err: err}
	}
	defer resp.Body.Close()

	var raw string
	if opts.Stream {
		if resp.StatusCode != http.StatusOK {
			data, _ := io.ReadAll(resp.Body)
			return core.Result{}, &core.TransientError{
				Provider: o.name,
				Err:      fmt.Errorf("http %d: %s", resp.StatusCode, string(data)),
			}
		}
		seg := conv.NewSegmenter(opts.OnSentence)
		raw, err = readStream(ctx, o.name, resp.Body, seg)
		if err != nil {
			return core.Result{}, err
		}
		if strings.TrimSpace(raw) == "" {
			return core.Result{}, &core.TransientError{Provider: o.name, Err: errors.New("empty stream")}
		}
		return core.Result{Raw: raw, Text: conv.Clean(raw), Sentences: seg.Sentences()}, nil
	}

	raw, err = parseChatResponse(o.name, resp)
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Raw: raw, Text: conv.Clean(raw)}, nil
}

func parseChatResponse(provider string, resp *http.Response) (string, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &core.TransientError{Provider: provider, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &core.TransientError{
			Provider: provider,
			Err:      fmt.Errorf("http %d: %s", resp.StatusCode, string(data)),
		}
	}

	var result struct {
		Choices []struct {
			Message core.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", &core.TransientError{Provider: provider, Err: fmt.Errorf("decode: %w", err)}
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", &core.TransientError{Provider: provider, Err: fmt.Errorf("empty choices: %s", string(data))}
	}
	return result.Choices[0].Message.Content, nil
}
