package root

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/mdnotes/internal/config"
	"github.com/Paintersrp/mdnotes/internal/state"
	"github.com/Paintersrp/mdnotes/internal/store"
)

func execute(t *testing.T, s *state.State, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := NewCmdRoot(s)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("mdn %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()

	cfg := config.Default(dir)
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}

	path := config.GetConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestVersionNeedsNoState(t *testing.T) {
	s := &state.State{}
	out := execute(t, s, "version")

	if !strings.HasPrefix(out, "mdn version") {
		t.Fatalf("unexpected output %q", out)
	}
	if s.Config != nil || s.Notebook != nil {
		t.Fatalf("version should not load state")
	}
}

func TestPrebuiltStateIsUsed(t *testing.T) {
	kv := store.NewMemory()
	if err := kv.Set("notes", `[{"id":"a","body":"# Alpha"}]`); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	cfg := config.Default(t.TempDir())
	cfg.Store.Backend = store.BackendMemory
	s, err := state.New(cfg, kv, nil)
	if err != nil {
		t.Fatalf("failed to build state: %v", err)
	}

	if got := execute(t, s, "list"); got != "a\tAlpha\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNotesPersistAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, dir)

	id := strings.TrimSpace(execute(t, &state.State{}, "--config", configPath, "new", "# Groceries"))
	if id == "" {
		t.Fatalf("expected new to print an id")
	}

	out := execute(t, &state.State{}, "--config", configPath, "list")
	if out != id+"\tGroceries\n" {
		t.Fatalf("unexpected list output %q", out)
	}

	if _, err := os.Stat(filepath.Join(dir, "data", "notes.json")); err != nil {
		t.Fatalf("expected file store under the data dir: %v", err)
	}
}

func TestBackendFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, dir)

	execute(t, &state.State{}, "--config", configPath, "--backend", "memory", "new")

	if got := execute(t, &state.State{}, "--config", configPath, "list"); got != "" {
		t.Fatalf("memory backend should not write to the file store, got %q", got)
	}
}

func TestChangeBackendLoadsConfigOnly(t *testing.T) {
	configPath := writeConfig(t, t.TempDir())

	s := &state.State{}
	execute(t, s, "--config", configPath, "change-backend", "memory")

	if s.Notebook != nil {
		t.Fatalf("change-backend should not open the store")
	}

	cfg, err := config.Load(configPath, nil)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if cfg.Store.Backend != store.BackendMemory {
		t.Fatalf("expected memory backend, got %q", cfg.Store.Backend)
	}
}
