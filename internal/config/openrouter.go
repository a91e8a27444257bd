package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/jarvisbot/pkg/log"
)

type OpenRouterConfig struct {
	APIKey      string  `env:"OPENROUTER_API_KEY"`
	BaseURL     string  `env:"JARVIS_OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api"`
	Model       string  `env:"JARVIS_OPENROUTER_MODEL" envDefault:"x-ai/grok-4-fast:free"`
	MaxTokens   int     `env:"JARVIS_OPENROUTER_MAX_TOKENS" envDefault:"2048"`
	Temp        float64 `env:"JARVIS_OPENROUTER_TEMPERATURE" envDefault:"0.85"`
	FreqPenalty float64 `env:"JARVIS_OPENROUTER_FREQUENCY_PENALTY" envDefault:"0.34"`
	PresPenalty float64 `env:"JARVIS_OPENROUTER_PRESENCE_PENALTY" envDefault:"0.06"`

	// Streaming keeps the connection open for the whole response.
	Timeout time.Duration `env:"JARVIS_OPENROUTER_TIMEOUT" envDefault:"60s"`
}

func NewOpenRouterConfig(ctx context.Context) *OpenRouterConfig {
	c := &OpenRouterConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenRouter config")
	}
	return c
}
