package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterMatchesPhrasesCaseInsensitive(t *testing.T) {
	r := New(Builtins(nil))

	for _, input := range []string{
		"what time is it",
		"What time is it?",
		"WHAT TIME IS IT",
		"  tell me the time  ",
	} {
		out, ok := r.Execute(context.Background(), input)
		assert.True(t, ok, input)
		assert.True(t, strings.HasPrefix(out, "It is "), input)
	}
}

func TestRouterMissFallsThrough(t *testing.T) {
	r := New(Builtins(nil))

	out, ok := r.Execute(context.Background(), "what is the meaning of life")
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestRouterClearInvokesCallback(t *testing.T) {
	cleared := false
	r := New(Builtins(func() { cleared = true }))

	out, ok := r.Execute(context.Background(), "clear context")
	assert.True(t, ok)
	assert.Equal(t, "Context cleared.", out)
	assert.True(t, cleared)
}

func TestRouterListCommandsDeduplicates(t *testing.T) {
	r := New(Builtins(nil))
	assert.Len(t, r.ListCommands(), 3)
}
