package textarea

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// PasteErrMsg reports a clipboard read that failed.
type PasteErrMsg struct {
	Err error
}

// Model is a bubbles textarea for note bodies with an extra binding that
// yanks the system clipboard in at the cursor.
type Model struct {
	textarea.Model

	Yank          key.Binding
	readClipboard func() (string, error)
}

func New(width, height int) *Model {
	ti := textarea.New()
	ti.Placeholder = "..."
	ti.CharLimit = 0
	ti.MaxHeight = 0
	ti.ShowLineNumbers = false
	ti.SetWidth(width)
	ti.SetHeight(height)

	return &Model{
		Model: ti,
		Yank: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "yank clipboard"),
		),
		readClipboard: clipboard.ReadAll,
	}
}

func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.Model.SetWidth(width)
	}
	if height > 0 {
		m.Model.SetHeight(height)
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && m.Focused() && key.Matches(msg, m.Yank) {
		content, err := m.readClipboard()
		if err != nil {
			return func() tea.Msg { return PasteErrMsg{Err: err} }
		}
		m.InsertString(content)
		return nil
	}

	var cmd tea.Cmd
	m.Model, cmd = m.Model.Update(msg)
	return cmd
}
