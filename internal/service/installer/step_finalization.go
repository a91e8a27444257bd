package installer

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep derives the final configuration from what was collected
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	state.Env.EnableTelegram = state.Env.TelegramToken != ""

	// A provider whose key was skipped cannot stay in the chain, the
	// factory would refuse to start.
	var order []string
	for _, name := range strings.Split(state.Env.ProviderOrder, ",") {
		switch name {
		case "huggingface":
			if state.Env.HFToken == "" {
				continue
			}
		case "openrouter":
			if state.Env.OpenRouterKey == "" {
				continue
			}
		}
		order = append(order, name)
	}
	state.Env.ProviderOrder = strings.Join(order, ",")

	// Signal completion
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
