package ports

import (
	"context"

	"github.com/bnema/rag-cli/internal/domain"
)

// CredentialStore holds the single access/refresh pair of the current session.
// Get returns zero Credentials, not an error, when nothing is stored.
type CredentialStore interface {
	Get(ctx context.Context) (domain.Credentials, error)
	Set(ctx context.Context, credentials domain.Credentials) error
	SetAccess(ctx context.Context, access string) error
	Clear(ctx context.Context) error
}

type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
