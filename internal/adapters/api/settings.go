package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/rag-cli/internal/domain"
)

type apiKeyJSON struct {
	APIKey   string `json:"api_key"`
	Provider string `json:"provider,omitempty"`
}

type apiKeyTestJSON struct {
	OK      *bool  `json:"ok"`
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) GetAPIKey(ctx context.Context) (domain.APIKeyStatus, error) {
	var out apiKeyJSON
	if err := c.call(ctx, http.MethodGet, c.endpoint(nil, "settings", "api-key"), nil, &out); err != nil {
		return domain.APIKeyStatus{}, fmt.Errorf("get api key: %w", err)
	}
	return domain.APIKeyStatus{MaskedKey: out.APIKey, Provider: out.Provider}, nil
}

func (c *Client) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.NewValidationError("api key", "must not be empty")
	}
	if err := c.call(ctx, http.MethodPost, c.endpoint(nil, "settings", "api-key"), apiKeyJSON{APIKey: key}, nil); err != nil {
		return fmt.Errorf("set api key: %w", err)
	}
	return nil
}

// TestAPIKey asks the server to try the stored provider key. A failed check
// is a result, not an error.
func (c *Client) TestAPIKey(ctx context.Context) (domain.APIKeyTestResult, error) {
	var out apiKeyTestJSON
	err := c.call(ctx, http.MethodPost, c.endpoint(nil, "settings", "api-key", "test"), struct{}{}, &out)
	if err != nil {
		if statusErr, ok := asStatusError(err); ok && !statusErr.Unauthorized() && statusErr.StatusCode < http.StatusInternalServerError {
			return domain.APIKeyTestResult{OK: false, Message: statusErr.Message}, nil
		}
		return domain.APIKeyTestResult{}, fmt.Errorf("test api key: %w", err)
	}

	ok := true
	switch {
	case out.OK != nil:
		ok = *out.OK
	case out.Success != nil:
		ok = *out.Success
	}
	msg := out.Message
	if msg == "" {
		msg = out.Error
	}
	return domain.APIKeyTestResult{OK: ok, Message: msg}, nil
}
