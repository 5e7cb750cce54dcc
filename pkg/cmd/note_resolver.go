package cmd

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/mdnotes/internal/note"
	"github.com/Paintersrp/mdnotes/internal/state"
)

// ResolveNote finds the note named by arg: an exact id, or a prefix that
// matches exactly one id.
func ResolveNote(s *state.State, arg string) (note.Note, error) {
	if s == nil || s.Notebook == nil {
		return note.Note{}, fmt.Errorf("state is not initialized")
	}

	arg = strings.TrimSpace(arg)
	if arg == "" {
		return note.Note{}, fmt.Errorf("a note id is required")
	}

	if n, ok := s.Notebook.Find(arg); ok {
		return n, nil
	}

	var matches []note.Note
	for _, n := range s.Notebook.All() {
		if strings.HasPrefix(n.ID, arg) {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return note.Note{}, fmt.Errorf("no note with id %q", arg)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, n := range matches {
			ids[i] = n.ID
		}
		return note.Note{}, fmt.Errorf(
			"id %q is ambiguous, it matches %s",
			arg,
			strings.Join(ids, ", "),
		)
	}
}
