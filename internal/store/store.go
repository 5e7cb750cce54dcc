// Package store provides the key-value backends notes are persisted to.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrClosed is returned by operations on a store after Close.
var ErrClosed = errors.New("store is closed")

// KV is a synchronous string key-value store.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

var Backends = []string{BackendMemory, BackendFile, BackendSQLite, BackendPostgres, BackendS3}

const defaultTimeout = 10 * time.Second

type S3Options struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type Options struct {
	Backend     string
	Dir         string
	SQLitePath  string
	PostgresDSN string
	S3          S3Options
	Timeout     time.Duration
	Logger      *slog.Logger
}

// ValidBackend reports whether name is a known backend.
func ValidBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}

// Open connects the backend named in opts.
func Open(ctx context.Context, opts Options) (KV, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	opts.Logger.Debug("opening store", "backend", opts.Backend)

	switch strings.ToLower(opts.Backend) {
	case BackendMemory:
		return NewMemory(), nil
	case "", BackendFile:
		return NewFile(opts.Dir)
	case BackendSQLite:
		return NewSQLite(opts.SQLitePath)
	case BackendPostgres:
		return NewPostgres(ctx, opts.PostgresDSN, opts.Timeout)
	case BackendS3:
		return NewS3(ctx, opts.S3, opts.Timeout)
	default:
		return nil, fmt.Errorf(
			"unknown store backend %q, expected one of %s",
			opts.Backend,
			strings.Join(Backends, ", "),
		)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store key cannot be empty")
	}
	return nil
}
