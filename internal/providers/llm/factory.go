package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/jarvisbot/internal/config"
	"github.com/sandevgo/jarvisbot/internal/core"
	"github.com/sandevgo/jarvisbot/pkg/log"
)

// NewChain builds the fallback chain in the configured order. A provider
// named in the order but missing its credential is a deployment mistake,
// reported as a ConfigError rather than silently skipped.
func NewChain(ctx context.Context, cfg *config.AppConfig) ([]core.Provider, error) {
	names := cfg.Providers()
	if len(names) == 0 {
		return nil, fmt.Errorf("empty provider order")
	}

	log.FromCtx(ctx).Info().
		Strs("order", names).
		Msg("building provider chain")

	chain := make([]core.Provider, 0, len(names))
	for _, name := range names {
		p, err := newProvider(ctx, name)
		if err != nil {
			return nil, err
		}
		chain = append(chain, p)
	}
	return chain, nil
}

func newProvider(ctx context.Context, name string) (core.Provider, error) {
	switch name {
	case "huggingface":
		hf := config.NewHuggingFaceConfig(ctx)
		if hf.Token == "" {
			return nil, &core.ConfigError{Provider: name, Var: "HF_TOKEN"}
		}
		return NewHuggingFace(hf), nil
	case "openrouter":
		or := config.NewOpenRouterConfig(ctx)
		if or.APIKey == "" {
			return nil, &core.ConfigError{Provider: name, Var: "OPENROUTER_API_KEY"}
		}
		return NewOpenRouter(or), nil
	case "aggregator":
		return NewAggregator(config.NewAggregatorConfig(ctx)), nil
	case "codeassist":
		return NewCodeAssist(config.NewCodeAssistConfig(ctx)), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", name)
	}
}
