package command

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/jarvisbot/internal/core"
)

// Builtins returns the stock voice commands. clearHistory is invoked by
// the "clear context" phrase.
func Builtins(clearHistory func()) []core.Command {
	return []core.Command{
		&timeCommand{},
		&dateCommand{},
		&clearCommand{clear: clearHistory},
	}
}

type timeCommand struct{}

func (c *timeCommand) Name() string        { return "time" }
func (c *timeCommand) Description() string { return "Tell the current time" }

func (c *timeCommand) Phrases() []string {
	return []string{
		"what time is it",
		"what is the time",
		"tell me the time",
	}
}

func (c *timeCommand) Execute(_ context.Context) (string, error) {
	return fmt.Sprintf("It is %s.", time.Now().Format("3:04 PM")), nil
}

type dateCommand struct{}

func (c *dateCommand) Name() string        { return "date" }
func (c *dateCommand) Description() string { return "Tell today's date" }

func (c *dateCommand) Phrases() []string {
	return []string{
		"what is the date",
		"what is today's date",
		"what day is it",
	}
}

func (c *dateCommand) Execute(_ context.Context) (string, error) {
	return fmt.Sprintf("Today is %s.", time.Now().Format("Monday, January 2")), nil
}

type clearCommand struct {
	clear func()
}

func (c *clearCommand) Name() string        { return "clear" }
func (c *clearCommand) Description() string { return "Forget the conversation so far" }

func (c *clearCommand) Phrases() []string {
	return []string{
		"clear context",
		"clear the context",
		"forget everything",
		"new conversation",
	}
}

func (c *clearCommand) Execute(_ context.Context) (string, error) {
	if c.clear != nil {
		c.clear()
	}
	return "Context cleared.", nil
}
