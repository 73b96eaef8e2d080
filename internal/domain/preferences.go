package domain

import "fmt"

const (
	DefaultResultCount = 5
	MaxResultCount     = 50
)

// Preferences are the client-side display defaults.
type Preferences struct {
	ResultCount int
	SearchMode  SearchMode
}

func DefaultPreferences() Preferences {
	return Preferences{ResultCount: DefaultResultCount, SearchMode: SearchModeFast}
}

func (p Preferences) WithDefaults() Preferences {
	if p.ResultCount <= 0 {
		p.ResultCount = DefaultResultCount
	}
	if p.SearchMode == "" {
		p.SearchMode = SearchModeFast
	}
	return p
}

func (p Preferences) Validate() error {
	if p.ResultCount < 1 || p.ResultCount > MaxResultCount {
		return NewValidationError("results", fmt.Sprintf("must be between 1 and %d", MaxResultCount))
	}
	if _, err := ParseSearchMode(string(p.SearchMode)); err != nil {
		return err
	}
	return nil
}
