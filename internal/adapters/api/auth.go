package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/rag-cli/internal/domain"
)

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type signInResponse struct {
	Message string    `json:"message"`
	Tokens  tokenPair `json:"tokens"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

func (c *Client) SignIn(ctx context.Context, username, password string) (domain.Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Credentials{}, domain.NewValidationError("username", "must not be empty")
	}
	if password == "" {
		return domain.Credentials{}, domain.NewValidationError("password", "must not be empty")
	}

	var out signInResponse
	err := c.callAnonymous(ctx, http.MethodPost, c.endpoint(nil, "sign-in"), signInRequest{Username: username, Password: password}, &out)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("sign in: %w", err)
	}
	if strings.TrimSpace(out.Tokens.Access) == "" {
		return domain.Credentials{}, errors.New("sign in: response carried no access token")
	}

	return domain.Credentials{Access: out.Tokens.Access, Refresh: out.Tokens.Refresh}, nil
}

// SignOut blacklists the refresh token on the server.
func (c *Client) SignOut(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return nil
	}
	if err := c.call(ctx, http.MethodPost, c.endpoint(nil, "logout"), refreshRequest{Refresh: refreshToken}, nil); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// Refresh mints a new access token. It never goes through the executor, so a
// rejected refresh token cannot trigger another refresh.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var out tokenPair
	if err := c.callAnonymous(ctx, http.MethodPost, c.endpoint(nil, "token", "refresh"), refreshRequest{Refresh: refreshToken}, &out); err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	if strings.TrimSpace(out.Access) == "" {
		return "", errors.New("refresh token: response carried no access token")
	}
	return out.Access, nil
}
