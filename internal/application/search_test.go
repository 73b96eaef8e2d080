package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchServiceUsesStoredPreferences(t *testing.T) {
	api := mocks.NewMockSearchAPI(t)
	prefs := mocks.NewMockPreferencesRepository(t)
	service := NewSearchService(api, prefs)

	prefs.EXPECT().Get(mockAnyContext()).Return(domain.Preferences{ResultCount: 7, SearchMode: domain.SearchModeFast}, nil)
	api.EXPECT().Search(mockAnyContext(), "vector stores", 7).Return(domain.SearchResponse{
		Results: []domain.SearchResult{{Chunk: "chunk", Source: "notes.md"}},
	}, nil)

	resp, err := service.Search(context.Background(), SearchCommand{Query: "  vector stores "})
	require.NoError(t, err)
	assert.Equal(t, "vector stores", resp.Query)
	assert.Len(t, resp.Results, 1)
}

func TestSearchServiceRerankCandidatePool(t *testing.T) {
	tests := []struct {
		name        string
		results     int
		wantInitial int
	}{
		{name: "small result count uses the minimum pool", results: 3, wantInitial: 10},
		{name: "result count at the minimum", results: 10, wantInitial: 10},
		{name: "large result count", results: 25, wantInitial: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mocks.NewMockSearchAPI(t)
			service := NewSearchService(api, mocks.NewMockPreferencesRepository(t))
			api.EXPECT().Rerank(mockAnyContext(), "q", tt.wantInitial, tt.results).Return(domain.SearchResponse{Query: "q"}, nil)

			_, err := service.Search(context.Background(), SearchCommand{Query: "q", Mode: domain.SearchModeRerank, Results: tt.results})
			require.NoError(t, err)
		})
	}
}

func TestSearchServiceExplicitFlagsSkipPreferences(t *testing.T) {
	api := mocks.NewMockSearchAPI(t)
	service := NewSearchService(api, mocks.NewMockPreferencesRepository(t))
	api.EXPECT().Search(mockAnyContext(), "q", 2).Return(domain.SearchResponse{}, nil)

	_, err := service.Search(context.Background(), SearchCommand{Query: "q", Mode: domain.SearchModeFast, Results: 2})
	require.NoError(t, err)
}

func TestSearchServiceWithoutRepositoryUsesDefaults(t *testing.T) {
	api := mocks.NewMockSearchAPI(t)
	service := NewSearchService(api, nil)
	api.EXPECT().Search(mockAnyContext(), "q", domain.DefaultResultCount).Return(domain.SearchResponse{}, nil)

	_, err := service.Search(context.Background(), SearchCommand{Query: "q"})
	require.NoError(t, err)
}

func TestSearchServiceValidation(t *testing.T) {
	service := NewSearchService(mocks.NewMockSearchAPI(t), nil)

	_, err := service.Search(context.Background(), SearchCommand{Query: "   "})
	assert.True(t, domain.IsValidationError(err))

	_, err = service.Search(context.Background(), SearchCommand{Query: "q", Results: domain.MaxResultCount + 1})
	assert.True(t, domain.IsValidationError(err))

	_, err = service.Search(context.Background(), SearchCommand{Query: "q", Mode: "semantic"})
	assert.True(t, domain.IsValidationError(err))
}

func TestSearchServiceWrapsAPIError(t *testing.T) {
	api := mocks.NewMockSearchAPI(t)
	service := NewSearchService(api, nil)
	apiErr := errors.New("boom")
	api.EXPECT().Search(mockAnyContext(), "q", 5).Return(domain.SearchResponse{}, apiErr)

	_, err := service.Search(context.Background(), SearchCommand{Query: "q"})
	require.ErrorIs(t, err, apiErr)
}

func TestSearchServiceSuggest(t *testing.T) {
	api := mocks.NewMockSearchAPI(t)
	service := NewSearchService(api, nil)

	got, err := service.Suggest(context.Background(), "é")
	require.NoError(t, err)
	assert.Nil(t, got, "one rune is below the minimum")

	api.EXPECT().Suggest(mockAnyContext(), "ve").Return([]string{"vector", "verbatim"}, nil)
	got, err = service.Suggest(context.Background(), " ve ")
	require.NoError(t, err)
	assert.Equal(t, []string{"vector", "verbatim"}, got)
}
