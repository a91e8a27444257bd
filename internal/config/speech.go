package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/jarvisbot/pkg/log"
)

// SpeechConfig picks the text-to-speech backends. Commands receive the
// sentence as their final argument; an empty command falls back to
// printing on the console.
type SpeechConfig struct {
	OnlineCommand  string `env:"JARVIS_TTS_ONLINE_COMMAND"`
	OfflineCommand string `env:"JARVIS_TTS_OFFLINE_COMMAND"`
	ProbeURL       string `env:"JARVIS_TTS_PROBE_URL" envDefault:"https://clients3.google.com/generate_204"`
}

func NewSpeechConfig(ctx context.Context) *SpeechConfig {
	c := &SpeechConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Speech config")
	}
	return c
}
