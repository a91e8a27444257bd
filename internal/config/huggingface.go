package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/jarvisbot/pkg/log"
)

// HuggingFaceConfig drives the Hugging Face router adapter. The token is
// validated by the provider factory, not here, so a chain that never uses
// this provider does not require the variable.
type HuggingFaceConfig struct {
	Token     string        `env:"HF_TOKEN"`
	BaseURL   string        `env:"JARVIS_HF_BASE_URL" envDefault:"https://router.huggingface.co"`
	Model     string        `env:"JARVIS_HF_MODEL" envDefault:"openai/gpt-oss-20b"`
	MaxTokens int           `env:"JARVIS_HF_MAX_TOKENS" envDefault:"1500"`
	Timeout   time.Duration `env:"JARVIS_HF_TIMEOUT" envDefault:"30s"`
}

func NewHuggingFaceConfig(ctx context.Context) *HuggingFaceConfig {
	c := &HuggingFaceConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse HuggingFace config")
	}
	return c
}
