package llm

import (
	"github.com/sandevgo/jarvisbot/internal/config"
	"github.com/sandevgo/jarvisbot/internal/core"
)

// NewHuggingFace talks to the Hugging Face inference router, which exposes
// the OpenAI chat dialect behind a bearer token.
func NewHuggingFace(cfg *config.HuggingFaceConfig) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		Name:       "huggingface",
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.Token,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
		Timeout:    cfg.Timeout,
		Defaults: core.Options{
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
		},
	})
}
