package textarea

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestYankInsertsClipboard(t *testing.T) {
	t.Parallel()

	m := New(40, 5)
	m.readClipboard = func() (string, error) { return "from clipboard", nil }
	m.SetValue("start ")
	m.Focus()

	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY}); cmd != nil {
		t.Fatalf("expected no command on successful yank")
	}

	if got := m.Value(); got != "start from clipboard" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestYankReportsClipboardErrors(t *testing.T) {
	t.Parallel()

	m := New(40, 5)
	m.readClipboard = func() (string, error) { return "", errors.New("no clipboard") }
	m.Focus()

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd == nil {
		t.Fatalf("expected an error command")
	}
	if _, ok := cmd().(PasteErrMsg); !ok {
		t.Fatalf("expected PasteErrMsg")
	}
}

func TestTypingRequiresFocus(t *testing.T) {
	t.Parallel()

	m := New(40, 5)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.Value() != "" {
		t.Fatalf("blurred textarea should ignore input, got %q", m.Value())
	}

	m.Focus()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.Value() != "x" {
		t.Fatalf("expected typed rune, got %q", m.Value())
	}
}
