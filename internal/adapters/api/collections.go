package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/rag-cli/internal/domain"
)

type collectionJSON struct {
	ID            flexID  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	DocumentCount int     `json:"document_count"`
	CreatedAt     apiTime `json:"created_at"`
}

func (c collectionJSON) toDomain() (domain.Collection, error) {
	id, err := strconv.ParseInt(string(c.ID), 10, 64)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("collection %q has a non-numeric id %q", c.Name, c.ID)
	}
	return domain.Collection{
		ID:            domain.CollectionID(id),
		Name:          c.Name,
		Description:   c.Description,
		DocumentCount: c.DocumentCount,
		CreatedAt:     c.CreatedAt.Time,
	}, nil
}

type collectionsResponse struct {
	Count       int              `json:"count"`
	Collections []collectionJSON `json:"collections"`
}

type createCollectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// moveRequest sends a null collection_id to take the document out of its
// collection.
type moveRequest struct {
	CollectionID *int64 `json:"collection_id"`
}

type moveResponse struct {
	Message    string  `json:"message"`
	Filename   string  `json:"filename"`
	Collection *string `json:"collection"`
}

func (c *Client) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	var out collectionsResponse
	if err := c.call(ctx, http.MethodGet, c.endpoint(nil, "collections"), nil, &out); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	collections := make([]domain.Collection, 0, len(out.Collections))
	for _, col := range out.Collections {
		converted, err := col.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list collections: %w", err)
		}
		collections = append(collections, converted)
	}
	return collections, nil
}

func (c *Client) CreateCollection(ctx context.Context, name, description string) (domain.Collection, error) {
	if err := domain.ValidateCollectionName(name); err != nil {
		return domain.Collection{}, err
	}
	name = strings.TrimSpace(name)

	var out collectionJSON
	req := createCollectionRequest{Name: name, Description: strings.TrimSpace(description)}
	if err := c.call(ctx, http.MethodPost, c.endpoint(nil, "collections"), req, &out); err != nil {
		return domain.Collection{}, fmt.Errorf("create collection %q: %w", name, err)
	}
	created, err := out.toDomain()
	if err != nil {
		return domain.Collection{}, fmt.Errorf("create collection %q: %w", name, err)
	}
	return created, nil
}

func (c *Client) MoveDocument(ctx context.Context, name string, collection domain.CollectionID) (domain.DocumentMove, error) {
	if err := domain.ValidateDocumentName(name); err != nil {
		return domain.DocumentMove{}, err
	}
	if collection < 0 {
		return domain.DocumentMove{}, domain.NewValidationError("collection id", "must not be negative")
	}
	name = strings.TrimSpace(name)

	var req moveRequest
	if collection > 0 {
		id := int64(collection)
		req.CollectionID = &id
	}
	var out moveResponse
	if err := c.call(ctx, http.MethodPut, c.endpoint(nil, "documents", name, "move"), req, &out); err != nil {
		return domain.DocumentMove{}, fmt.Errorf("move document %q: %w", name, err)
	}

	move := domain.DocumentMove{Document: out.Filename, Message: out.Message}
	if move.Document == "" {
		move.Document = name
	}
	if out.Collection != nil {
		move.Collection = *out.Collection
	}
	return move, nil
}
