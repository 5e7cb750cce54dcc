package note

import "sync"

// Source is what a Selection resolves against.
type Source interface {
	Find(id string) (Note, bool)
	First() (Note, bool)
}

// Selection tracks the id of the note being edited. The stored id is
// never validated or repaired; Resolve derives a usable note on demand.
type Selection struct {
	mu      sync.Mutex
	current string
}

// NewSelection starts on the most recently used note of src, if any.
func NewSelection(src Source) *Selection {
	s := &Selection{}
	if src == nil {
		return s
	}
	if first, ok := src.First(); ok {
		s.current = first.ID
	}
	return s
}

func (s *Selection) Select(id string) {
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
}

// Current returns the raw selected id, which may refer to a deleted note.
func (s *Selection) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Resolve returns the selected note, falling back to the first note of
// src. The fallback is recomputed on every call and not stored.
func (s *Selection) Resolve(src Source) (Note, bool) {
	id := s.Current()
	if id != "" {
		if n, ok := src.Find(id); ok {
			return n, true
		}
	}
	return src.First()
}
