package application

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/ports"
)

// MinRerankCandidates is the smallest candidate pool sent to the reranker.
const MinRerankCandidates = 10

// SearchCommand leaves Mode and Results zero to use the stored preferences.
type SearchCommand struct {
	Query   string
	Mode    domain.SearchMode
	Results int
}

type SearchService struct {
	search ports.SearchAPI
	prefs  ports.PreferencesRepository
}

func NewSearchService(search ports.SearchAPI, prefs ports.PreferencesRepository) *SearchService {
	return &SearchService{search: search, prefs: prefs}
}

func (s *SearchService) Search(ctx context.Context, cmd SearchCommand) (domain.SearchResponse, error) {
	query := strings.TrimSpace(cmd.Query)
	if query == "" {
		return domain.SearchResponse{}, domain.NewValidationError("query", "must not be empty")
	}

	mode, results, err := s.resolve(ctx, cmd)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	var resp domain.SearchResponse
	switch mode {
	case domain.SearchModeRerank:
		resp, err = s.search.Rerank(ctx, query, max(MinRerankCandidates, results), results)
	default:
		resp, err = s.search.Search(ctx, query, results)
	}
	if err != nil {
		return domain.SearchResponse{}, fmt.Errorf("%s: %w", mode, err)
	}
	if resp.Query == "" {
		resp.Query = query
	}
	return resp, nil
}

// Suggest returns nothing for queries shorter than the suggestion minimum.
func (s *SearchService) Suggest(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < domain.MinSuggestQueryLength {
		return nil, nil
	}
	suggestions, err := s.search.Suggest(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	return suggestions, nil
}

func (s *SearchService) resolve(ctx context.Context, cmd SearchCommand) (domain.SearchMode, int, error) {
	mode, results := cmd.Mode, cmd.Results
	if mode == "" || results == 0 {
		prefs := domain.DefaultPreferences()
		if s.prefs != nil {
			stored, err := s.prefs.Get(ctx)
			if err != nil {
				return "", 0, fmt.Errorf("load preferences: %w", err)
			}
			prefs = stored.WithDefaults()
		}
		if mode == "" {
			mode = prefs.SearchMode
		}
		if results == 0 {
			results = prefs.ResultCount
		}
	}

	parsed, err := domain.ParseSearchMode(string(mode))
	if err != nil {
		return "", 0, err
	}
	if results < 1 || results > domain.MaxResultCount {
		return "", 0, domain.NewValidationError("results", fmt.Sprintf("must be between 1 and %d", domain.MaxResultCount))
	}
	return parsed, results, nil
}
