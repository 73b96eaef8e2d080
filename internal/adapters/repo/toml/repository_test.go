package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "preferences.toml"))
	require.NoError(t, err)

	want := domain.Preferences{ResultCount: 12, SearchMode: domain.SearchModeRerank}
	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepositoryMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "missing", "preferences.toml"))
	require.NoError(t, err)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), got)

	_, statErr := os.Stat(repo.Path())
	assert.True(t, os.IsNotExist(statErr), "Get must not create the file")
}

func TestRepositorySaveCreatesDirectoryAndEnforcesPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "preferences.toml")
	repo, err := NewRepository(path)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.DefaultPreferences()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".preferences-*.toml.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	repo, err := NewRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), domain.Preferences{ResultCount: 3, SearchMode: domain.SearchModeFast}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "version = 1")
	assert.Contains(t, content, "[preferences]")
	assert.Contains(t, content, "results = 3")
	assert.Contains(t, content, "search_mode = 'search'")
}

func TestRepositoryOutOfRangeValuesFallBackToDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n[preferences]\nresults = 500\nsearch_mode = \"semantic\"\n"), 0o600))

	repo, err := NewRepository(path)
	require.NoError(t, err)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), got)
}

func TestRepositorySaveRejectsInvalidPreferences(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "preferences.toml"))
	require.NoError(t, err)

	err = repo.Save(context.Background(), domain.Preferences{ResultCount: 0, SearchMode: domain.SearchModeFast})
	assert.True(t, domain.IsValidationError(err))
	_, statErr := os.Stat(repo.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [\n"), 0o600))

	repo, err := NewRepository(path)
	require.NoError(t, err)

	_, err = repo.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode preferences file")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0o600))

	repo, err := NewRepository(path)
	require.NoError(t, err)

	_, err = repo.Get(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported preferences schema version 2"))
}

func TestRepositoryCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "preferences.toml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, repo.Save(ctx, domain.DefaultPreferences()), context.Canceled)
	_, err = repo.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRepositoryInstancesShareLockPerPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	first, err := NewRepository(path)
	require.NoError(t, err)
	second, err := NewRepository(path + string(filepath.Separator) + ".." + string(filepath.Separator) + filepath.Base(path))
	require.NoError(t, err)
	assert.Same(t, first.mu, second.mu)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(count int) {
			defer wg.Done()
			repo := first
			if count%2 == 0 {
				repo = second
			}
			assert.NoError(t, repo.Save(context.Background(), domain.Preferences{ResultCount: count, SearchMode: domain.SearchModeFast}))
		}(i)
	}
	wg.Wait()

	got, err := first.Get(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.ResultCount, 1)
	assert.LessOrEqual(t, got.ResultCount, 20)
}

func TestNewRepositoryRejectsEmptyPath(t *testing.T) {
	_, err := NewRepository("  ")
	require.Error(t, err)
}
