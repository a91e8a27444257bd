package llm

import (
	"context"
	"testing"

	"github.com/sandevgo/jarvisbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderMissingCredentialIsConfigError(t *testing.T) {
	t.Setenv("HF_TOKEN", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	for _, name := range []string{"huggingface", "openrouter"} {
		_, err := newProvider(context.Background(), name)
		require.Error(t, err, name)
		var cerr *core.ConfigError
		assert.ErrorAs(t, err, &cerr, name)
	}
}

func TestNewProviderKeylessAdapters(t *testing.T) {
	for _, name := range []string{"aggregator", "codeassist"} {
		p, err := newProvider(context.Background(), name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name())
	}
}

func TestNewProviderUnknownName(t *testing.T) {
	_, err := newProvider(context.Background(), "clippy")
	assert.Error(t, err)
}
