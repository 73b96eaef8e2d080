// Package bolt stores secrets in a single bbolt database file. The database
// is opened per operation so concurrent CLI invocations only contend for the
// file lock while a transaction runs.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/ports"
)

const (
	fileMode    = 0o600
	dirMode     = 0o700
	openTimeout = 2 * time.Second
)

var secretsBucket = []byte("secrets")

type Store struct {
	path string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	return s.update(ctx, func(b *bbolt.Bucket) error {
		return b.Put([]byte(key), []byte(value))
	})
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("bolt secret %q: %w", key, domain.ErrSecretNotFound)
	}

	db, err := s.open(true)
	if err != nil {
		return "", err
	}
	defer db.Close()

	var value []byte
	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(secretsBucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("read bolt secret %q: %w", key, err)
	}
	if value == nil {
		return "", fmt.Errorf("bolt secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return string(value), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return ctx.Err()
	}

	return s.update(ctx, func(b *bbolt.Bucket) error {
		return b.Delete([]byte(key))
	})
}

func (s *Store) update(ctx context.Context, fn func(*bbolt.Bucket) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return fmt.Errorf("create bolt directory: %w", err)
	}

	db, err := s.open(false)
	if err != nil {
		return err
	}
	defer db.Close()

	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(secretsBucket)
		if err != nil {
			return fmt.Errorf("create bucket %s: %w", secretsBucket, err)
		}
		return fn(b)
	})
	if err != nil {
		return fmt.Errorf("update bolt secrets: %w", err)
	}
	return nil
}

func (s *Store) open(readOnly bool) (*bbolt.DB, error) {
	db, err := bbolt.Open(s.path, fileMode, &bbolt.Options{Timeout: openTimeout, ReadOnly: readOnly})
	if err != nil {
		return nil, fmt.Errorf("open bolt secrets %s: %w", s.path, err)
	}
	return db, nil
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("secret key is empty")
	}
	return nil
}
