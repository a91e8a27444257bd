package config

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/jarvisbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"JARVIS_RUNTIME_PATH" envDefault:".jarvisbot"`

	// ProviderOrder is the fallback priority, highest first. Swapping the
	// order is a configuration change, not a code change.
	ProviderOrder string `env:"JARVIS_PROVIDER_ORDER" envDefault:"huggingface,openrouter,aggregator,codeassist"`

	// Transport flags
	EnableTelegram bool `env:"JARVIS_ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"JARVIS_ENABLE_CLI" envDefault:"true"`

	// Conversation management
	HistoryMaxMessages int `env:"JARVIS_HISTORY_MAX_MESSAGES" envDefault:"12"`

	// Local matcher
	MatchThreshold float64 `env:"JARVIS_MATCH_THRESHOLD" envDefault:"0.7"`
	MatcherCache   bool    `env:"JARVIS_MATCHER_CACHE" envDefault:"false"`

	// Activity monitor
	IdleWarnAfter time.Duration `env:"JARVIS_IDLE_WARN_AFTER" envDefault:"30m"`
	IdlePollEvery time.Duration `env:"JARVIS_IDLE_POLL_EVERY" envDefault:"1m"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

// Providers returns the configured fallback order as a slice of names.
func (c AppConfig) Providers() []string {
	parts := strings.Split(c.ProviderOrder, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

func (c AppConfig) GetRuntimePath() string {
	return resolveRuntimePath(c.RuntimePath)
}

func (c AppConfig) GetQAPath() string {
	return filepath.Join(c.GetRuntimePath(), "qna_data.json")
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.GetRuntimePath(), "jarvisbot.db")
}
