package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/jarvisbot/internal/core"
)

// defaultTimeout caps providers that do not configure their own.
const defaultTimeout = 60 * time.Second

type baseProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func newBaseProvider(baseURL, apiKey, model string, timeout time.Duration) baseProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return baseProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

func (b *baseProvider) doRequest(ctx context.Context, method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	return resp, nil
}

// mergeOptions fills zero-valued knobs from the adapter defaults. A caller
// that sets nothing gets exactly the configured behavior.
func mergeOptions(defaults, opts core.Options) core.Options {
	if opts.Model == "" {
		opts.Model = defaults.Model
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaults.MaxTokens
	}
	if opts.Temperature == 0 {
		opts.Temperature = defaults.Temperature
	}
	if opts.FrequencyPenalty == 0 {
		opts.FrequencyPenalty = defaults.FrequencyPenalty
	}
	if opts.PresencePenalty == 0 {
		opts.PresencePenalty = defaults.PresencePenalty
	}
	if opts.RepetitionPenalty == 0 {
		opts.RepetitionPenalty = defaults.RepetitionPenalty
	}
	if opts.TopK == 0 {
		opts.TopK = defaults.TopK
	}
	return opts
}

func chatPayload(msgs []core.Message, opts core.Options) map[string]any {
	p := map[string]any{
		"messages": msgs,
	}
	if opts.Model != "" {
		p["model"] = opts.Model
	}
	if opts.MaxTokens > 0 {
		p["max_tokens"] = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		p["temperature"] = opts.Temperature
	}
	if opts.FrequencyPenalty != 0 {
		p["frequency_penalty"] = opts.FrequencyPenalty
	}
	if opts.PresencePenalty != 0 {
		p["presence_penalty"] = opts.PresencePenalty
	}
	if opts.RepetitionPenalty != 0 {
		p["repetition_penalty"] = opts.RepetitionPenalty
	}
	if opts.TopK > 0 {
		p["top_k"] = opts.TopK
	}
	if opts.Stream {
		p["stream"] = true
	}
	return p
}
