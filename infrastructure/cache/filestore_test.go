package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arizon-automation/sales-dashboard/pkg/log"
)

func TestFileStore(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), 2*time.Hour)
		require.NoError(t, err)

		store.Set(ctx, "orders/2024-05-01/2024-05-16", []byte(`{"items":[]}`))

		payload, ok := store.Get(ctx, "orders/2024-05-01/2024-05-16")
		require.True(t, ok)
		assert.Equal(t, []byte(`{"items":[]}`), payload)
	})

	t.Run("missing key is a miss", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), 2*time.Hour)
		require.NoError(t, err)

		_, ok := store.Get(ctx, "nope")
		assert.False(t, ok)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir, 2*time.Hour)
		require.NoError(t, err)

		store.Set(ctx, "stale", []byte("old"))

		// Age the entry past the TTL.
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		past := time.Now().Add(-3 * time.Hour)
		require.NoError(t, os.Chtimes(filepath.Join(dir, entries[0].Name()), past, past))

		_, ok := store.Get(ctx, "stale")
		assert.False(t, ok)
	})

	t.Run("set overwrites a previous entry", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), 2*time.Hour)
		require.NoError(t, err)

		store.Set(ctx, "key", []byte("first"))
		store.Set(ctx, "key", []byte("second"))

		payload, ok := store.Get(ctx, "key")
		require.True(t, ok)
		assert.Equal(t, []byte("second"), payload)
	})

	t.Run("clear removes all entries", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), 2*time.Hour)
		require.NoError(t, err)

		store.Set(ctx, "a", []byte("1"))
		store.Set(ctx, "b", []byte("2"))

		require.NoError(t, store.Clear(ctx))

		_, ok := store.Get(ctx, "a")
		assert.False(t, ok)
		_, ok = store.Get(ctx, "b")
		assert.False(t, ok)
	})

	t.Run("clear sweeps stranded temp files", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir, 2*time.Hour)
		require.NoError(t, err)

		store.Set(ctx, "a", []byte("1"))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "entry-123456.tmp"), []byte("partial"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644))

		require.NoError(t, store.Clear(ctx))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "notes.txt", entries[0].Name())
	})
}
