package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "rag/rag.example.com/refresh"

func fakeRun(t *testing.T, wantArgs []string, wantInput string, stdout, stderr string, err error) runFunc {
	t.Helper()
	return func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, wantArgs, args)
		assert.Equal(t, wantInput, input)
		return stdout, stderr, err
	}
}

func TestStorePutInsertsMultilineForced(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRun(t, []string{"insert", "--multiline", "--force", testKey}, "tok-123\n", "", "", nil)}

	require.NoError(t, store.Put(context.Background(), testKey, "tok-123"))
}

func TestStorePutRejectsNewlines(t *testing.T) {
	t.Parallel()

	store := &Store{run: func(context.Context, string, ...string) (string, string, error) {
		t.Fatal("pass must not be invoked")
		return "", "", nil
	}}

	err := store.Put(context.Background(), testKey, "line1\nline2")
	require.Error(t, err)
	assert.ErrorContains(t, err, "multi-line")
}

func TestStoreGetReturnsFirstLine(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRun(t, []string{"show", testKey}, "", "tok-123\r\nurl: x\n", "", nil)}

	value, err := store.Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", value)
}

func TestStoreGetMapsMissingEntryToNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRun(t, []string{"show", testKey}, "",
		"", "Error: "+testKey+" is not in the password store.", errors.New("exit status 1"))}

	_, err := store.Get(context.Background(), testKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetWrapsOtherFailures(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRun(t, []string{"show", testKey}, "", "", "gpg: decryption failed", errors.New("exit status 2"))}

	_, err := store.Get(context.Background(), testKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, testKey)
	assert.ErrorContains(t, err, "gpg: decryption failed")
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{run: fakeRun(t, []string{"rm", "--force", testKey}, "",
		"", "Error: "+testKey+" is not in the password store.", errors.New("exit status 1"))}

	require.NoError(t, store.Delete(context.Background(), testKey))
}

func TestStoreAvailable(t *testing.T) {
	t.Parallel()

	ok := &Store{run: fakeRun(t, []string{"ls"}, "", "Password Store\n", "", nil)}
	missing := &Store{run: fakeRun(t, []string{"ls"}, "", "", "", ErrUnavailable)}

	assert.True(t, ok.Available(context.Background()))
	assert.False(t, missing.Available(context.Background()))
}
