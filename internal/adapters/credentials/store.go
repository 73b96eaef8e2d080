// Package credentials keeps the session token pair in a secret store, scoped
// by API host so that switching servers does not leak tokens between them.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/ports"
)

const keyPrefix = "rag"

type Store struct {
	secrets ports.SecretStore
	scope   string

	mu sync.Mutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(secrets ports.SecretStore, scope string) (*Store, error) {
	if secrets == nil {
		return nil, errors.New("secret store is nil")
	}
	scope = strings.TrimSpace(scope)
	if scope == "" || strings.ContainsAny(scope, `/\`) || scope == "." || scope == ".." {
		return nil, fmt.Errorf("invalid credential scope %q", scope)
	}
	return &Store{secrets: secrets, scope: scope}, nil
}

// ScopeFromBaseURL returns the host[:port] of the API base URL.
func ScopeFromBaseURL(baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("api base url %q has no host", baseURL)
	}
	return strings.ToLower(u.Host), nil
}

func (s *Store) AccessKey() string {
	return keyPrefix + "/" + s.scope + "/access"
}

func (s *Store) RefreshKey() string {
	return keyPrefix + "/" + s.scope + "/refresh"
}

func (s *Store) Get(ctx context.Context) (domain.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	access, err := s.read(ctx, s.AccessKey())
	if err != nil {
		return domain.Credentials{}, err
	}
	refresh, err := s.read(ctx, s.RefreshKey())
	if err != nil {
		return domain.Credentials{}, err
	}

	return domain.Credentials{Access: access, Refresh: refresh}, nil
}

// Set replaces both tokens. An empty token removes the stored value.
func (s *Store) Set(ctx context.Context, creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(ctx, s.RefreshKey(), creds.Refresh); err != nil {
		return err
	}
	return s.write(ctx, s.AccessKey(), creds.Access)
}

func (s *Store) SetAccess(ctx context.Context, access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(ctx, s.AccessKey(), access)
}

// Clear removes both tokens, attempting each even if the first fails.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, key := range []string{s.AccessKey(), s.RefreshKey()} {
		if err := s.secrets.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("clear %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Store) read(ctx context.Context, key string) (string, error) {
	value, err := s.secrets.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return strings.TrimSpace(value), nil
}

func (s *Store) write(ctx context.Context, key, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		if err := s.secrets.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
		return nil
	}
	if err := s.secrets.Put(ctx, key, value); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
