package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandSpeaker shells out to an external synthesizer such as espeak-ng
// or say, appending the sentence as the last argument. Speak blocks until
// playback finishes, which is what the queue consumer wants.
type CommandSpeaker struct {
	name string
	args []string
}

// NewCommandSpeaker parses a command line like "espeak-ng -v en-us".
func NewCommandSpeaker(command string) (*CommandSpeaker, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty tts command")
	}
	return &CommandSpeaker{name: fields[0], args: fields[1:]}, nil
}

func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, s.name, append(append([]string{}, s.args...), text)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tts command %s: %w", s.name, err)
	}
	return nil
}
