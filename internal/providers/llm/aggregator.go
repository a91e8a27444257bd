package llm

import (
	"github.com/sandevgo/jarvisbot/internal/config"
	"github.com/sandevgo/jarvisbot/internal/core"
)

// NewAggregator targets a keyless free-tier gateway that multiplexes many
// upstream models behind one OpenAI-compatible endpoint. The chat path is
// the base URL itself, not /v1/chat/completions.
func NewAggregator(cfg *config.AggregatorConfig) *OpenAICompatible {
	var extra map[string]any
	if cfg.WebSearch {
		extra = map[string]any{"web_search": true}
	}

	var authHeader, authPrefix string
	if cfg.APIKey != "" {
		authHeader, authPrefix = "Authorization", "Bearer "
	}

	return NewOpenAICompatible(OpenAICompatibleConfig{
		Name:         "aggregator",
		BaseURL:      cfg.BaseURL,
		APIKey:       cfg.APIKey,
		Path:         "/",
		AuthHeader:   authHeader,
		AuthPrefix:   authPrefix,
		Timeout:      cfg.Timeout,
		ExtraPayload: extra,
		Defaults: core.Options{
			Model: cfg.Model,
		},
	})
}
