package submodels

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 2)

	focusedButtonStyle = buttonStyle.Copy().
				Bold(true).
				Foreground(lipgloss.Color("#FFF")).
				BorderForeground(lipgloss.Color("#0AF"))
)

// PressedMsg is sent when a focused button is activated with enter.
type PressedMsg struct {
	Label string
}

type Button struct {
	Label   string
	focused bool
}

func NewButton(label string) Button {
	return Button{Label: label}
}

func (b *Button) Focus() {
	b.focused = true
}

func (b *Button) Blur() {
	b.focused = false
}

func (b Button) Focused() bool {
	return b.focused
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.focused && msg.Type == tea.KeyEnter {
			label := b.Label
			return b, func() tea.Msg { return PressedMsg{Label: label} }
		}
	}
	return b, nil
}

func (b Button) View() string {
	if b.focused {
		return focusedButtonStyle.Render(b.Label)
	}
	return buttonStyle.Render(b.Label)
}
