package state

import (
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

type RootStatus struct {
	mu   sync.RWMutex
	line string
}

func (r *RootStatus) Set(line string) {
	r.mu.Lock()
	r.line = line
	r.mu.Unlock()
}

func (r *RootStatus) Value() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.line
}

// StatusMsg carries a refreshed root status line.
type StatusMsg struct {
	Line string
}

// StatusCmd summarises the note count and backend into the root status
// line and returns it as a message for the TUI to redraw with.
func (s *State) StatusCmd() tea.Cmd {
	if s == nil {
		return nil
	}

	return func() tea.Msg {
		line := s.statusLine()
		if s.RootStatus != nil {
			s.RootStatus.Set(line)
		}
		return StatusMsg{Line: line}
	}
}

func (s *State) statusLine() string {
	if s.Notebook == nil {
		return ""
	}

	parts := []string{formatCount(s.Notebook.Len())}
	if s.Config != nil && s.Config.Store.Backend != "" {
		parts = append(parts, s.Config.Store.Backend)
	}
	return strings.Join(parts, " · ")
}

func formatCount(n int) string {
	if n == 1 {
		return "1 note"
	}
	return fmt.Sprintf("%d notes", n)
}
