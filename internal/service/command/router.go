package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/jarvisbot/internal/core"
)

// Router answers fixed phrases locally. Anything it does not recognize
// falls through to the brain, so Execute reports a miss instead of an
// error for unknown input.
type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	r := &Router{
		commands: make(map[string]core.Command),
	}

	for _, cmd := range commands {
		for _, phrase := range cmd.Phrases() {
			r.commands[normalize(phrase)] = cmd
		}
	}
	return r
}

func (r *Router) Execute(ctx context.Context, input string) (string, bool) {
	cmd, ok := r.commands[normalize(input)]
	if !ok {
		return "", false
	}

	result, err := cmd.Execute(ctx)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	return result, true
}

func (r *Router) ListCommands() []core.Command {
	seen := make(map[string]struct{})
	res := make([]core.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if _, ok := seen[cmd.Name()]; ok {
			continue
		}
		seen[cmd.Name()] = struct{}{}
		res = append(res, cmd)
	}
	return res
}

func normalize(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	return strings.TrimRight(input, ".!?")
}
