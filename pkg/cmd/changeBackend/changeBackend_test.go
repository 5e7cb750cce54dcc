package changeBackend

import (
	"io"
	"testing"

	"github.com/Paintersrp/mdnotes/internal/config"
	"github.com/Paintersrp/mdnotes/internal/state"
	"github.com/Paintersrp/mdnotes/internal/store"
)

func TestChangeBackendSavesConfig(t *testing.T) {
	t.Parallel()

	configPath := config.GetConfigPath(t.TempDir())
	if err := config.EnsureConfigExists(configPath); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := config.Load(configPath, nil)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	cmd := NewCmdChangeBackend(&state.State{Config: cfg})
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"sqlite"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := config.Load(configPath, nil)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if reloaded.Store.Backend != store.BackendSQLite {
		t.Fatalf("expected sqlite backend, got %q", reloaded.Store.Backend)
	}
}

func TestChangeBackendRejectsUnknown(t *testing.T) {
	t.Parallel()

	cfg := config.Default(t.TempDir())
	cmd := NewCmdChangeBackend(&state.State{Config: cfg})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"redis"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for an unknown backend")
	}
}
