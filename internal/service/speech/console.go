package speech

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ConsoleSpeaker prints instead of talking. It is the fallback when no
// speech backend is reachable and the default in headless deployments.
type ConsoleSpeaker struct {
	out io.Writer
}

func NewConsoleSpeaker() *ConsoleSpeaker {
	return &ConsoleSpeaker{out: os.Stdout}
}

func (s *ConsoleSpeaker) Speak(_ context.Context, text string) error {
	_, err := fmt.Fprintf(s.out, "🔊 %s\n", text)
	return err
}
