package domain

import (
	"strings"
	"time"
)

type CollectionID int64

// Collection groups documents. DocumentCount is as reported by the server.
type Collection struct {
	ID            CollectionID
	Name          string
	Description   string
	DocumentCount int
	CreatedAt     time.Time
}

// DocumentMove is the outcome of moving a document. An empty Collection
// means the document is no longer in any collection.
type DocumentMove struct {
	Document   string
	Collection string
	Message    string
}

func ValidateCollectionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("collection name", "must not be empty")
	}
	return nil
}
