package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/jarvisbot/pkg/log"
)

// CodeAssistConfig drives the keyless code-assistant endpoint used as the
// last entry of the default fallback chain.
type CodeAssistConfig struct {
	Endpoint string        `env:"JARVIS_CODEASSIST_ENDPOINT" envDefault:"https://https.extension.phind.com/agent/"`
	Model    string        `env:"JARVIS_CODEASSIST_MODEL" envDefault:"Phind-70B"`
	Timeout  time.Duration `env:"JARVIS_CODEASSIST_TIMEOUT" envDefault:"60s"`
}

func NewCodeAssistConfig(ctx context.Context) *CodeAssistConfig {
	c := &CodeAssistConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse CodeAssist config")
	}
	return c
}
