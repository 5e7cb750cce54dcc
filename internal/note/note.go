// Package note provides the in-memory note list, its mirroring to a
// key-value store and the current-note selection.
package note

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DefaultBody is the placeholder body given to every newly created note.
const DefaultBody = "# Type your markdown note's title here"

// DefaultKey is the store key holding the serialized note list.
const DefaultKey = "notes"

// Note is a markdown body identified by an immutable id.
type Note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// Store is the synchronous key-value storage the repository mirrors to.
type Store interface {
	// Get returns the value stored at key and whether it was present.
	Get(key string) (string, bool, error)
	// Set overwrites the value stored at key.
	Set(key, value string) error
}

// IDGenerator produces unique note identifiers.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a plain function to IDGenerator.
type IDFunc func() string

func (f IDFunc) NewID() string {
	return f()
}

// UUIDGenerator issues random (v4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// ErrIDExhausted is returned by Create when the generator keeps producing
// ids that are already taken.
var ErrIDExhausted = errors.New("id generator returned only existing ids")

// PersistError reports that a mutation could not be written to the store.
// The repository keeps its previous state when this is returned.
type PersistError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: failed to persist %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func encode(notes []Note) (string, error) {
	if notes == nil {
		notes = []Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decode(raw string) ([]Note, error) {
	var notes []Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}
