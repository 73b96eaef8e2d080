package bolt

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "secrets.db")
	store := NewStore(path)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "rag/host/access", "a1"))
	require.NoError(t, store.Put(ctx, "rag/host/refresh", "r1"))
	require.NoError(t, store.Put(ctx, "rag/host/access", "a2"))

	access, err := store.Get(ctx, "rag/host/access")
	require.NoError(t, err)
	assert.Equal(t, "a2", access)

	refresh, err := store.Get(ctx, "rag/host/refresh")
	require.NoError(t, err)
	assert.Equal(t, "r1", refresh)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(fileMode), info.Mode().Perm())
}

func TestStoreGetMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "secrets.db"))

	_, err := store.Get(context.Background(), "rag/host/access")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)

	require.NoError(t, store.Put(context.Background(), "rag/host/refresh", "r"))
	_, err = store.Get(context.Background(), "rag/host/access")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "secrets.db")
	store := NewStore(path)
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, "rag/host/access"))
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist, "deleting from a missing database must not create it")

	require.NoError(t, store.Put(ctx, "rag/host/access", "a"))
	require.NoError(t, store.Delete(ctx, "rag/host/access"))
	require.NoError(t, store.Delete(ctx, "rag/host/access"))

	_, err = store.Get(ctx, "rag/host/access")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "secrets.db"))

	assert.ErrorContains(t, store.Put(context.Background(), " ", "v"), "secret key is empty")
}

func TestStoreSerializesConcurrentWriters(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "secrets.db"))
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, value := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(v string) {
			defer wg.Done()
			assert.NoError(t, store.Put(ctx, "rag/host/access", v))
		}(value)
	}
	wg.Wait()

	got, err := store.Get(ctx, "rag/host/access")
	require.NoError(t, err)
	assert.Contains(t, []string{"a", "b", "c", "d"}, got)
}
