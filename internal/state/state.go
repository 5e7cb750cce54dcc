package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/Paintersrp/mdnotes/internal/cache"
	"github.com/Paintersrp/mdnotes/internal/config"
	"github.com/Paintersrp/mdnotes/internal/note"
	"github.com/Paintersrp/mdnotes/internal/store"
	"github.com/Paintersrp/mdnotes/utils"
)

const previewCacheSize = 64

// LoadAnnotation is the cobra annotation key a command sets to need less
// than the full state.
const (
	LoadAnnotation = "mdn/load"
	LoadNothing    = "none"
	LoadConfigOnly = "config"
)

type State struct {
	Config     *config.Config
	Store      store.KV
	Repository *note.Repository
	Notebook   *note.Notebook
	Previews   *cache.RenderCache
	Logger     *slog.Logger
	Home       string
	RootStatus *RootStatus
}

// NewState loads configuration from configPath (the default location
// under the home directory when empty), opens the configured store, and
// loads the notes from it once.
func NewState(ctx context.Context, configPath string, flags *pflag.FlagSet) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		configPath = config.GetConfigPath(home)
	}

	cfg, err := LoadConfig(configPath, flags)
	if err != nil {
		return nil, err
	}

	logger := slog.Default()

	kv, err := store.Open(ctx, cfg.StoreOptions(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}

	s, err := New(cfg, kv, logger)
	if err != nil {
		kv.Close()
		return nil, err
	}
	s.Home = home
	return s, nil
}

// New builds the note state on an already open store.
func New(cfg *config.Config, kv store.KV, logger *slog.Logger) (*State, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repo, err := note.NewRepository(
		kv,
		note.WithKey(cfg.Store.Key),
		note.WithLogger(logger.With("backend", cfg.Store.Backend)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	style := cfg.UI.Style
	previews := cache.NewRenderCache(previewCacheSize, func(body string, width int) string {
		return utils.RenderMarkdownPreview(body, style, width)
	})

	return &State{
		Config:     cfg,
		Store:      kv,
		Repository: repo,
		Notebook:   note.NewNotebook(repo),
		Previews:   previews,
		Logger:     logger,
		RootStatus: &RootStatus{},
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(configPath string, flags *pflag.FlagSet) (*config.Config, error) {
	if err := config.EnsureConfigExists(configPath); err != nil {
		return nil, err
	}

	return config.Load(configPath, flags)
}

// Close releases the store connection.
func (s *State) Close() error {
	if s == nil || s.Store == nil {
		return nil
	}

	err := s.Store.Close()
	s.Store = nil
	if errors.Is(err, store.ErrClosed) {
		return nil
	}
	return err
}
