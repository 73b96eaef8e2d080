package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/logx"
	"github.com/bnema/rag-cli/internal/ports"
)

type SessionStatus struct {
	SignedIn   bool
	CanRefresh bool
}

type LogoutResult struct {
	// Revoked is true when the server accepted the sign-out.
	Revoked   bool
	RevokeErr error
}

// SessionService signs in and out and reports the stored session.
type SessionService struct {
	auth        ports.AuthAPI
	credentials ports.CredentialStore
}

func NewSessionService(auth ports.AuthAPI, credentials ports.CredentialStore) *SessionService {
	return &SessionService{auth: auth, credentials: credentials}
}

func (s *SessionService) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return domain.NewValidationError("username", "must not be empty")
	}
	if password == "" {
		return domain.NewValidationError("password", "must not be empty")
	}

	creds, err := s.auth.SignIn(ctx, username, password)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if !creds.HasAccess() {
		return fmt.Errorf("sign in: server returned no access token")
	}
	if err := s.credentials.Set(ctx, creds); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}
	return nil
}

// Logout revokes the refresh token on a best-effort basis and always clears
// the local credentials. Only a failure to clear is returned as an error.
func (s *SessionService) Logout(ctx context.Context) (LogoutResult, error) {
	creds, err := s.credentials.Get(ctx)
	if err != nil {
		return LogoutResult{}, fmt.Errorf("read credentials: %w", err)
	}

	var result LogoutResult
	if creds.HasRefresh() {
		if err := s.auth.SignOut(ctx, creds.Refresh); err != nil {
			logx.Ctx(ctx).Warn("server sign-out failed", "error", err)
			result.RevokeErr = err
		} else {
			result.Revoked = true
		}
	}

	if err := s.credentials.Clear(ctx); err != nil {
		return result, fmt.Errorf("clear credentials: %w", err)
	}
	return result, nil
}

func (s *SessionService) Status(ctx context.Context) (SessionStatus, error) {
	creds, err := s.credentials.Get(ctx)
	if err != nil {
		return SessionStatus{}, fmt.Errorf("read credentials: %w", err)
	}
	return SessionStatus{
		SignedIn:   creds.HasAccess() || creds.HasRefresh(),
		CanRefresh: creds.HasRefresh(),
	}, nil
}

// RequireSession fails with domain.ErrNotSignedIn when nothing is stored.
func (s *SessionService) RequireSession(ctx context.Context) error {
	status, err := s.Status(ctx)
	if err != nil {
		return err
	}
	if !status.SignedIn {
		return domain.ErrNotSignedIn
	}
	return nil
}
