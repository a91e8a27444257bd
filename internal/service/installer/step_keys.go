package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// HFKeyStep collects the Hugging Face token
type HFKeyStep struct {
	input textinput.Model
}

func NewHFKeyStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "hf_..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &HFKeyStep{
		input: ti,
	}
}

func (s *HFKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *HFKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !strings.Contains(state.Env.ProviderOrder, "huggingface") {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Env.HFToken = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *HFKeyStep) View(state *InstallState) string {
	return "Enter your Hugging Face token:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm, leave empty to skip)\n"
}

// OpenRouterKeyStep collects the OpenRouter API key
type OpenRouterKeyStep struct {
	input textinput.Model
}

func NewOpenRouterKeyStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "sk-or-v1-..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &OpenRouterKeyStep{
		input: ti,
	}
}

func (s *OpenRouterKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *OpenRouterKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !strings.Contains(state.Env.ProviderOrder, "openrouter") {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Env.OpenRouterKey = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *OpenRouterKeyStep) View(state *InstallState) string {
	return "Enter your OpenRouter API Key:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm, leave empty to skip)\n"
}
