package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/jarvisbot/pkg/log"
)

// AggregatorConfig points at a keyless OpenAI-compatible free-tier
// aggregator. An API key is optional.
type AggregatorConfig struct {
	APIKey    string        `env:"JARVIS_AGGREGATOR_API_KEY"`
	BaseURL   string        `env:"JARVIS_AGGREGATOR_BASE_URL" envDefault:"https://text.pollinations.ai/openai"`
	Model     string        `env:"JARVIS_AGGREGATOR_MODEL" envDefault:"deepseek-v3"`
	WebSearch bool          `env:"JARVIS_AGGREGATOR_WEB_SEARCH" envDefault:"true"`
	Timeout   time.Duration `env:"JARVIS_AGGREGATOR_TIMEOUT" envDefault:"30s"`
}

func NewAggregatorConfig(ctx context.Context) *AggregatorConfig {
	c := &AggregatorConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Aggregator config")
	}
	return c
}
