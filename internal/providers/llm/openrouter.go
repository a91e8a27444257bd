package llm

import (
	"github.com/sandevgo/jarvisbot/internal/config"
	"github.com/sandevgo/jarvisbot/internal/core"
)

func NewOpenRouter(cfg *config.OpenRouterConfig) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		Name:       "openrouter",
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
		Timeout:    cfg.Timeout,
		ExtraHeaders: map[string]string{
			"HTTP-Referer": core.JarvisRepoURL,
			"X-Title":      core.JarvisName,
		},
		Defaults: core.Options{
			Model:            cfg.Model,
			MaxTokens:        cfg.MaxTokens,
			Temperature:      cfg.Temp,
			FrequencyPenalty: cfg.FreqPenalty,
			PresencePenalty:  cfg.PresPenalty,
		},
	})
}
