package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/mdnotes/internal/constants"
	"github.com/Paintersrp/mdnotes/internal/note"
	"github.com/Paintersrp/mdnotes/internal/store"
)

const (
	defaultStyle    = "dracula"
	defaultWordWrap = 80
)

type S3Config struct {
	Bucket          string `yaml:"bucket"                      mapstructure:"bucket"`
	Prefix          string `yaml:"prefix"                      mapstructure:"prefix"`
	Region          string `yaml:"region"                      mapstructure:"region"`
	Endpoint        string `yaml:"endpoint"                    mapstructure:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id,omitempty"     mapstructure:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty" mapstructure:"secret_access_key"`
}

type StoreConfig struct {
	Backend     string   `yaml:"backend"      mapstructure:"backend"`
	Key         string   `yaml:"key"          mapstructure:"key"`
	Dir         string   `yaml:"dir"          mapstructure:"dir"`
	SQLitePath  string   `yaml:"sqlite_path"  mapstructure:"sqlite_path"`
	PostgresDSN string   `yaml:"postgres_dsn" mapstructure:"postgres_dsn"`
	S3          S3Config `yaml:"s3"           mapstructure:"s3"`
}

type UIConfig struct {
	Style    string `yaml:"style"     mapstructure:"style"`
	WordWrap int    `yaml:"word_wrap" mapstructure:"word_wrap"`
}

type Config struct {
	Store StoreConfig `yaml:"store" mapstructure:"store"`
	UI    UIConfig    `yaml:"ui"    mapstructure:"ui"`

	path string
}

// Default returns the configuration written for a fresh install. Data
// files live next to the config file in baseDir.
func Default(baseDir string) *Config {
	dataDir := filepath.Join(baseDir, constants.DataDir)
	return &Config{
		Store: StoreConfig{
			Backend:    store.BackendFile,
			Key:        note.DefaultKey,
			Dir:        dataDir,
			SQLitePath: filepath.Join(dataDir, constants.SQLiteFile),
		},
		UI: UIConfig{
			Style:    defaultStyle,
			WordWrap: defaultWordWrap,
		},
	}
}

// Load reads the config file at path, layered under MDN_ environment
// variables and any changed flags in flags that match a config key
// ("backend" binds to store.backend). flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(constants.ConfigFileType)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, Default(filepath.Dir(path)))

	if flags != nil {
		if f := flags.Lookup("backend"); f != nil {
			if err := v.BindPFlag("store.backend", f); err != nil {
				return nil, fmt.Errorf("failed to bind backend flag: %w", err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		slog.Debug("config file missing, using defaults", "path", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys the
// file leaves out.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("store.backend", d.Store.Backend)
	v.SetDefault("store.key", d.Store.Key)
	v.SetDefault("store.dir", d.Store.Dir)
	v.SetDefault("store.sqlite_path", d.Store.SQLitePath)
	v.SetDefault("store.postgres_dsn", "")
	v.SetDefault("store.s3.bucket", "")
	v.SetDefault("store.s3.prefix", "")
	v.SetDefault("store.s3.region", "")
	v.SetDefault("store.s3.endpoint", "")
	v.SetDefault("store.s3.access_key_id", "")
	v.SetDefault("store.s3.secret_access_key", "")
	v.SetDefault("ui.style", d.UI.Style)
	v.SetDefault("ui.word_wrap", d.UI.WordWrap)
}

func (cfg *Config) Validate() error {
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	if !store.ValidBackend(cfg.Store.Backend) {
		return &ConfigError{
			Key: "store.backend",
			msg: fmt.Sprintf(
				"invalid backend %q. Please choose from %s",
				cfg.Store.Backend,
				strings.Join(store.Backends, ", "),
			),
		}
	}

	if strings.TrimSpace(cfg.Store.Key) == "" {
		return &ConfigError{Key: "store.key", msg: "must not be empty"}
	}

	switch cfg.Store.Backend {
	case store.BackendPostgres:
		if strings.TrimSpace(cfg.Store.PostgresDSN) == "" {
			return &ConfigError{Key: "store.postgres_dsn", msg: "is required for the postgres backend"}
		}
	case store.BackendS3:
		if strings.TrimSpace(cfg.Store.S3.Bucket) == "" {
			return &ConfigError{Key: "store.s3.bucket", msg: "is required for the s3 backend"}
		}
	}

	if cfg.UI.WordWrap < 0 {
		return &ConfigError{Key: "ui.word_wrap", msg: "must not be negative"}
	}
	return nil
}

func (cfg *Config) GetConfigPath() string {
	return cfg.path
}

// StoreOptions translates the store section for store.Open.
func (cfg *Config) StoreOptions(logger *slog.Logger) store.Options {
	return store.Options{
		Backend:     cfg.Store.Backend,
		Dir:         cfg.Store.Dir,
		SQLitePath:  cfg.Store.SQLitePath,
		PostgresDSN: cfg.Store.PostgresDSN,
		S3: store.S3Options{
			Bucket:          cfg.Store.S3.Bucket,
			Prefix:          cfg.Store.S3.Prefix,
			Region:          cfg.Store.S3.Region,
			Endpoint:        cfg.Store.S3.Endpoint,
			AccessKeyID:     cfg.Store.S3.AccessKeyID,
			SecretAccessKey: cfg.Store.S3.SecretAccessKey,
		},
		Logger: logger,
	}
}

// ChangeBackend validates and persists a new store backend.
func (cfg *Config) ChangeBackend(backend string) error {
	prev := cfg.Store.Backend
	cfg.Store.Backend = backend
	if err := cfg.Validate(); err != nil {
		cfg.Store.Backend = prev
		return err
	}
	return cfg.Save()
}

func (cfg *Config) Save() error {
	if cfg.path == "" {
		return &ConfigError{msg: "config has no file path"}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(cfg.path, data, 0o644)
}
