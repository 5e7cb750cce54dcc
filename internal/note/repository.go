package note

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

const maxIDAttempts = 8

// Repository owns the ordered note list. The most recently created or
// edited note is always at index 0, and every mutation overwrites the
// store entry with the full list before returning.
type Repository struct {
	mu     sync.Mutex
	store  Store
	key    string
	ids    IDGenerator
	logger *slog.Logger
	notes  []Note
}

type Option func(*Repository)

// WithKey overrides the store key the list is kept under.
func WithKey(key string) Option {
	return func(r *Repository) {
		if key != "" {
			r.key = key
		}
	}
}

func WithIDGenerator(g IDGenerator) Option {
	return func(r *Repository) {
		if g != nil {
			r.ids = g
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRepository loads the note list from s exactly once. An absent or
// undecodable value yields an empty list; only a failing read is
// returned as an error.
func NewRepository(s Store, opts ...Option) (*Repository, error) {
	r := &Repository{
		store:  s,
		key:    DefaultKey,
		ids:    UUIDGenerator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		notes:  []Note{},
	}
	for _, opt := range opts {
		opt(r)
	}

	raw, ok, err := s.Get(r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q from store: %w", r.key, err)
	}
	if !ok {
		r.logger.Debug("no stored notes", "key", r.key)
		return r, nil
	}

	notes, err := decode(raw)
	if err != nil {
		r.logger.Debug("discarding unreadable notes", "key", r.key, "error", err)
		return r, nil
	}
	r.notes = notes
	r.logger.Debug("loaded notes", "key", r.key, "count", len(notes))

	return r, nil
}

// Key returns the store key the list is persisted under.
func (r *Repository) Key() string {
	return r.key
}

// Create prepends a note with a fresh id and the default body.
func (r *Repository) Create() (Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.freshID()
	if err != nil {
		return Note{}, err
	}

	n := Note{ID: id, Body: DefaultBody}
	next := make([]Note, 0, len(r.notes)+1)
	next = append(next, n)
	next = append(next, r.notes...)

	if err := r.commit("create", next); err != nil {
		return Note{}, err
	}
	return n, nil
}

// Update replaces the body of the note with the given id and moves it to
// the front. An unknown id leaves the list unchanged.
func (r *Repository) Update(id, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Note, 0, len(r.notes))
	for _, n := range r.notes {
		if n.ID == id {
			n.Body = body
			next = append([]Note{n}, next...)
			continue
		}
		next = append(next, n)
	}

	return r.commit("update", next)
}

// Delete removes the note with the given id, keeping the order of the
// rest. An unknown id leaves the list unchanged.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Note, 0, len(r.notes))
	for _, n := range r.notes {
		if n.ID == id {
			continue
		}
		next = append(next, n)
	}

	return r.commit("delete", next)
}

func (r *Repository) Find(id string) (Note, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// First returns the most recently used note.
func (r *Repository) First() (Note, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.notes) == 0 {
		return Note{}, false
	}
	return r.notes[0], true
}

// All returns a snapshot of the list in most-recently-used order.
func (r *Repository) All() []Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Note, len(r.notes))
	copy(out, r.notes)
	return out
}

func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}

// commit writes next to the store and only then swaps it in.
func (r *Repository) commit(op string, next []Note) error {
	raw, err := encode(next)
	if err != nil {
		return &PersistError{Op: op, Key: r.key, Err: err}
	}
	if err := r.store.Set(r.key, raw); err != nil {
		r.logger.Error("store write failed", "op", op, "key", r.key, "error", err)
		return &PersistError{Op: op, Key: r.key, Err: err}
	}
	r.notes = next
	r.logger.Debug("persisted notes", "op", op, "count", len(next))
	return nil
}

func (r *Repository) freshID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := r.ids.NewID()
		if id != "" && !r.hasID(id) {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

func (r *Repository) hasID(id string) bool {
	for _, n := range r.notes {
		if n.ID == id {
			return true
		}
	}
	return false
}
