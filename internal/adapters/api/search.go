package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/bnema/rag-cli/internal/domain"
)

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type rerankRequest struct {
	Query    string `json:"query"`
	InitialK int    `json:"initial_k"`
	FinalK   int    `json:"final_k"`
}

type searchResultJSON struct {
	Chunk          string   `json:"chunk"`
	Source         string   `json:"source"`
	RelevanceScore *float64 `json:"relevance_score"`
}

type searchResponse struct {
	Query   string             `json:"query"`
	Count   int                `json:"count"`
	Results []searchResultJSON `json:"results"`
}

func (r searchResponse) domain(query string) domain.SearchResponse {
	out := domain.SearchResponse{Query: r.Query}
	if out.Query == "" {
		out.Query = query
	}
	for _, res := range r.Results {
		out.Results = append(out.Results, domain.SearchResult{
			Chunk:          res.Chunk,
			Source:         res.Source,
			RelevanceScore: res.RelevanceScore,
		})
	}
	return out
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

func validateQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", domain.NewValidationError("query", "must not be empty")
	}
	return query, nil
}

func (c *Client) Search(ctx context.Context, query string, topK int) (domain.SearchResponse, error) {
	query, err := validateQuery(query)
	if err != nil {
		return domain.SearchResponse{}, err
	}
	if topK < 1 {
		return domain.SearchResponse{}, domain.NewValidationError("top_k", "must be at least 1")
	}

	var out searchResponse
	if err := c.call(ctx, http.MethodPost, c.endpoint(nil, "search"), searchRequest{Query: query, TopK: topK}, &out); err != nil {
		return domain.SearchResponse{}, fmt.Errorf("search: %w", err)
	}
	return out.domain(query), nil
}

func (c *Client) Rerank(ctx context.Context, query string, initialK, finalK int) (domain.SearchResponse, error) {
	query, err := validateQuery(query)
	if err != nil {
		return domain.SearchResponse{}, err
	}
	if finalK < 1 || initialK < finalK {
		return domain.SearchResponse{}, domain.NewValidationError("rerank", "need 1 <= final_k <= initial_k")
	}

	var out searchResponse
	req := rerankRequest{Query: query, InitialK: initialK, FinalK: finalK}
	if err := c.call(ctx, http.MethodPost, c.endpoint(nil, "search", "rerank"), req, &out); err != nil {
		return domain.SearchResponse{}, fmt.Errorf("rerank: %w", err)
	}
	return out.domain(query), nil
}

func (c *Client) Suggest(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < domain.MinSuggestQueryLength {
		return nil, domain.NewValidationError("query", fmt.Sprintf("needs at least %d characters", domain.MinSuggestQueryLength))
	}

	var out suggestResponse
	if err := c.call(ctx, http.MethodGet, c.endpoint(url.Values{"q": {query}}, "search", "suggest"), nil, &out); err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	return out.Suggestions, nil
}
