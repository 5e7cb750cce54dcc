package list

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/Paintersrp/mdnotes/internal/config"
	"github.com/Paintersrp/mdnotes/internal/state"
	"github.com/Paintersrp/mdnotes/internal/store"
)

func seededState(t *testing.T, seed string) *state.State {
	t.Helper()

	kv := store.NewMemory()
	if err := kv.Set("notes", seed); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	cfg := config.Default(t.TempDir())
	cfg.Store.Backend = store.BackendMemory

	s, err := state.New(cfg, kv, nil)
	if err != nil {
		t.Fatalf("failed to build state: %v", err)
	}
	return s
}

func execute(t *testing.T, s *state.State, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := NewCmdList(s)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestListPrintsIDsAndTitles(t *testing.T) {
	t.Parallel()

	s := seededState(t, `[{"id":"b","body":"# Second\ntext"},{"id":"a","body":""}]`)

	got := execute(t, s)
	want := "b\tSecond\na\tUntitled\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestListJSON(t *testing.T) {
	t.Parallel()

	s := seededState(t, `[{"id":"a","body":"# **Bold** title"}]`)

	var entries []entry
	if err := json.Unmarshal([]byte(execute(t, s, "--json")), &entries); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].ID != "a" || entries[0].Title != "Bold title" || entries[0].Body != "# **Bold** title" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestListEmpty(t *testing.T) {
	t.Parallel()

	s := seededState(t, `[]`)
	if got := execute(t, s); got != "" {
		t.Fatalf("expected no output, got %q", got)
	}
	if got := execute(t, s, "--json"); got != "[]\n" {
		t.Fatalf("expected empty json array, got %q", got)
	}
}
