package application

import (
	"context"
	"fmt"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/ports"
)

// PreferencesUpdate changes only the fields that are set.
type PreferencesUpdate struct {
	ResultCount *int
	SearchMode  *domain.SearchMode
}

type PreferencesService struct {
	repo ports.PreferencesRepository
}

func NewPreferencesService(repo ports.PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

func (s *PreferencesService) Get(ctx context.Context) (domain.Preferences, error) {
	prefs, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	return prefs.WithDefaults(), nil
}

func (s *PreferencesService) Update(ctx context.Context, update PreferencesUpdate) (domain.Preferences, error) {
	prefs, err := s.Get(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}

	if update.ResultCount != nil {
		prefs.ResultCount = *update.ResultCount
	}
	if update.SearchMode != nil {
		mode, err := domain.ParseSearchMode(string(*update.SearchMode))
		if err != nil {
			return domain.Preferences{}, err
		}
		prefs.SearchMode = mode
	}
	if err := prefs.Validate(); err != nil {
		return domain.Preferences{}, err
	}

	if err := s.repo.Save(ctx, prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return prefs, nil
}

func (s *PreferencesService) Reset(ctx context.Context) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()
	if err := s.repo.Save(ctx, prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return prefs, nil
}
