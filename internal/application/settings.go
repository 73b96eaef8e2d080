package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/ports"
)

// SettingsService manages the server-side provider API key.
type SettingsService struct {
	settings ports.SettingsAPI
}

func NewSettingsService(settings ports.SettingsAPI) *SettingsService {
	return &SettingsService{settings: settings}
}

func (s *SettingsService) APIKey(ctx context.Context) (domain.APIKeyStatus, error) {
	status, err := s.settings.GetAPIKey(ctx)
	if err != nil {
		return domain.APIKeyStatus{}, fmt.Errorf("get api key: %w", err)
	}
	return status, nil
}

func (s *SettingsService) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.NewValidationError("api key", "must not be empty")
	}
	if err := s.settings.SetAPIKey(ctx, key); err != nil {
		return fmt.Errorf("set api key: %w", err)
	}
	return nil
}

func (s *SettingsService) TestAPIKey(ctx context.Context) (domain.APIKeyTestResult, error) {
	result, err := s.settings.TestAPIKey(ctx)
	if err != nil {
		return domain.APIKeyTestResult{}, fmt.Errorf("test api key: %w", err)
	}
	return result, nil
}
