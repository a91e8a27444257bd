package core

import "context"

// Command is a fixed-phrase builtin answered locally, bypassing the
// provider chain entirely.
type Command interface {
	Name() string
	Description() string
	// Phrases lists the normalized utterances that trigger the command.
	Phrases() []string
	Execute(ctx context.Context) (string, error)
}
