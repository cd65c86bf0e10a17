package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSessionStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "session.json")
	s := NewFileSessionStore(path)

	ok, err := s.Has(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok, "no session recorded yet")

	require.NoError(t, s.Put(ctx, "sess-1"))

	ok, err = s.Has(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Has(ctx, "sess-2")
	require.NoError(t, err)
	assert.False(t, ok, "only the recorded id matches")

	require.NoError(t, s.Delete(ctx, "sess-1"))
	ok, err = s.Has(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileSessionStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	require.NoError(t, NewFileSessionStore(path).Put(ctx, "sess-1"))

	// A fresh store over the same file still sees the session.
	reopened := NewFileSessionStore(path)
	ok, err := reopened.Has(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileSessionStore_DeleteOtherIDKeepsSession(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileSessionStore(path)

	require.NoError(t, s.Put(ctx, "sess-1"))
	require.NoError(t, s.Delete(ctx, "sess-2"))

	ok, err := s.Has(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileSessionStore_DeleteMissingFileIsNoOp(t *testing.T) {
	s := NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
	assert.NoError(t, s.Delete(context.Background(), "sess-1"))
}

func TestFileSessionStore_CorruptFileMeansNoSession(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	s := NewFileSessionStore(path)
	ok, err := s.Has(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
