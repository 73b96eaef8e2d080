package domain

import "strings"

type SearchMode string

const (
	SearchModeFast   SearchMode = "search"
	SearchModeRerank SearchMode = "rerank"
)

const MinSuggestQueryLength = 2

func ParseSearchMode(raw string) (SearchMode, error) {
	switch mode := SearchMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case SearchModeFast, SearchModeRerank:
		return mode, nil
	case "":
		return SearchModeFast, nil
	default:
		return "", NewValidationError("search mode", `must be "search" or "rerank"`)
	}
}

type SearchResult struct {
	Chunk          string
	Source         string
	RelevanceScore *float64
}

type SearchResponse struct {
	Query   string
	Results []SearchResult
}
