package core

import "context"

// History is the caller-owned conversation handle. A provider only ensures
// the system turn at index 0 and reads the rest; the orchestrator appends
// the user and assistant turns once a call succeeds, so a failed provider
// leaves the conversation untouched.
type History interface {
	EnsureSystem(prompt string)
	Append(role, content string)
	Messages() []Message
}

type Provider interface {
	Name() string
	Generate(ctx context.Context, hist History, input string, opts Options) (Result, error)
}

// Speaker renders text as speech. Speak may block until playback finishes.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Listener captures one utterance. An empty string with nil error means
// nothing intelligible was transcribed.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}
