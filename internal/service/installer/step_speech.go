package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SpeechStep picks the text-to-speech backend
type SpeechStep struct {
	choices []string
	labels  []string
	cursor  int
}

func NewSpeechStep() Step {
	return &SpeechStep{
		choices: []string{
			"",
			"espeak-ng",
			"say",
		},
		labels: []string{
			"Console only (print answers)",
			"espeak-ng (Linux)",
			"say (macOS)",
		},
		cursor: 0,
	}
}

func (s *SpeechStep) Init() tea.Cmd {
	return nil
}

func (s *SpeechStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
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
			state.Env.TTSOffline = s.choices[s.cursor]
			return nil, nil
		}
	}
	return s, nil
}

func (s *SpeechStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select the speech backend:\n\n")
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
