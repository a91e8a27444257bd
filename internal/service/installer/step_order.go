package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// OrderStep picks the provider fallback order
type OrderStep struct {
	choices []string
	labels  []string
	cursor  int
}

func NewOrderStep() Step {
	return &OrderStep{
		choices: []string{
			"huggingface,openrouter,aggregator,codeassist",
			"openrouter,huggingface,aggregator,codeassist",
			"aggregator,codeassist",
		},
		labels: []string{
			"Hugging Face first (default)",
			"OpenRouter first",
			"Keyless only (no API keys needed)",
		},
		cursor: 0,
	}
}

func (s *OrderStep) Init() tea.Cmd {
	return nil
}

func (s *OrderStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.Env.ProviderOrder = s.choices[s.cursor]
			return nil, nil
		}
	}
	return s, nil
}

func (s *OrderStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select the provider fallback order:\n\n")
	for i, label := range s.labels {
		cursor := " "
		if s.cursor == i {
			cursor = "❯"
			b.WriteString(selStyle.Render(fmt.Sprintf("%s %s", cursor, label)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%s %s", cursor, label)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
