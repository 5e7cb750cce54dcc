package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()

	_, ok, err := kv.Get("notes")
	require.NoError(t, err)
	assert.False(t, ok, "fresh store should not have a value")

	require.NoError(t, kv.Set("notes", `[{"id":"a","body":"# A"}]`))
	v, ok, err := kv.Get("notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a","body":"# A"}]`, v)

	require.NoError(t, kv.Set("notes", "[]"))
	v, _, err = kv.Get("notes")
	require.NoError(t, err)
	assert.Equal(t, "[]", v, "second write should overwrite")

	require.NoError(t, kv.Set("other", "x"))
	v, _, err = kv.Get("notes")
	require.NoError(t, err)
	assert.Equal(t, "[]", v, "keys must be independent")

	assert.Error(t, kv.Set("", "x"))

	require.NoError(t, kv.Close())
	_, _, err = kv.Get("notes")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, kv.Set("notes", "[]"), ErrClosed)
}

func TestMemory(t *testing.T) {
	t.Parallel()
	exerciseKV(t, NewMemory())
}

func TestFile(t *testing.T) {
	t.Parallel()

	f, err := NewFile(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	exerciseKV(t, f)
}

func TestFileSurvivesReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, f.Set("notes", `[{"id":"a","body":"A"}]`))
	require.NoError(t, f.Close())

	reopened, err := NewFile(dir)
	require.NoError(t, err)
	v, ok, err := reopened.Get("notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a","body":"A"}]`, v)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files should not be left behind")
	assert.Equal(t, "notes.json", entries[0].Name())
}

func TestFileRejectsPathKeys(t *testing.T) {
	t.Parallel()

	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../escape", "a/b", `a\b`} {
		assert.Error(t, f.Set(key, "x"), key)
		_, _, err := f.Get(key)
		assert.Error(t, err, key)
	}
}

func TestNewFileRequiresDir(t *testing.T) {
	t.Parallel()

	_, err := NewFile(" ")
	assert.Error(t, err)
}

func TestSQLite(t *testing.T) {
	t.Parallel()

	s, err := NewSQLite(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	exerciseKV(t, s)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "notes.db")
	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("notes", "[1]"))
	require.NoError(t, s.Close())

	reopened, err := NewSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get("notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[1]", v)
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("MDN_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("MDN_TEST_POSTGRES_DSN not set")
	}

	p, err := NewPostgres(context.Background(), dsn, 0)
	require.NoError(t, err)
	_, err = p.pool.Exec(context.Background(), `DELETE FROM mdn_kv WHERE key IN ('notes', 'other')`)
	require.NoError(t, err)
	exerciseKV(t, p)
}

func TestOpenDispatchesBackends(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	kv, err := Open(context.Background(), Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, kv)

	kv, err = Open(context.Background(), Options{Backend: "", Dir: dir})
	require.NoError(t, err)
	assert.IsType(t, &File{}, kv)

	kv, err = Open(context.Background(), Options{Backend: "SQLite", SQLitePath: filepath.Join(dir, "n.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, kv)
	require.NoError(t, kv.Close())

	_, err = Open(context.Background(), Options{Backend: "redis"})
	assert.ErrorContains(t, err, "unknown store backend")

	_, err = Open(context.Background(), Options{Backend: BackendPostgres})
	assert.Error(t, err, "postgres without dsn")

	_, err = Open(context.Background(), Options{Backend: BackendS3})
	assert.Error(t, err, "s3 without bucket")
}

func TestValidBackend(t *testing.T) {
	t.Parallel()

	for _, b := range Backends {
		assert.True(t, ValidBackend(b), b)
	}
	assert.False(t, ValidBackend("redis"))
}
