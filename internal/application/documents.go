package application

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/ports"
)

type DocumentService struct {
	documents   ports.DocumentAPI
	collections ports.CollectionAPI
}

func NewDocumentService(documents ports.DocumentAPI, collections ports.CollectionAPI) *DocumentService {
	return &DocumentService{documents: documents, collections: collections}
}

// List returns the indexed documents sorted by name.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.documents.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	sorted := append([]domain.Document(nil), docs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	return sorted, nil
}

func (s *DocumentService) Show(ctx context.Context, name string) (domain.DocumentPreview, error) {
	if err := domain.ValidateDocumentName(name); err != nil {
		return domain.DocumentPreview{}, err
	}
	preview, err := s.documents.GetDocument(ctx, strings.TrimSpace(name))
	if err != nil {
		return domain.DocumentPreview{}, fmt.Errorf("get document %s: %w", name, err)
	}
	return preview, nil
}

func (s *DocumentService) Delete(ctx context.Context, name string) error {
	if err := domain.ValidateDocumentName(name); err != nil {
		return err
	}
	if err := s.documents.DeleteDocument(ctx, strings.TrimSpace(name)); err != nil {
		return fmt.Errorf("delete document %s: %w", name, err)
	}
	return nil
}

// Collections returns the user's collections sorted by name.
func (s *DocumentService) Collections(ctx context.Context) ([]domain.Collection, error) {
	collections, err := s.collections.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	sorted := append([]domain.Collection(nil), collections...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	return sorted, nil
}

func (s *DocumentService) CreateCollection(ctx context.Context, name, description string) (domain.Collection, error) {
	if err := domain.ValidateCollectionName(name); err != nil {
		return domain.Collection{}, err
	}
	created, err := s.collections.CreateCollection(ctx, strings.TrimSpace(name), description)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("create collection %s: %w", name, err)
	}
	return created, nil
}

// Move files a document under the collection named by target, which is a
// collection id or a case-insensitive name. An empty target removes the
// document from its collection.
func (s *DocumentService) Move(ctx context.Context, name, target string) (domain.DocumentMove, error) {
	if err := domain.ValidateDocumentName(name); err != nil {
		return domain.DocumentMove{}, err
	}
	id, err := s.resolveCollection(ctx, strings.TrimSpace(target))
	if err != nil {
		return domain.DocumentMove{}, err
	}
	move, err := s.collections.MoveDocument(ctx, strings.TrimSpace(name), id)
	if err != nil {
		return domain.DocumentMove{}, fmt.Errorf("move document %s: %w", name, err)
	}
	return move, nil
}

func (s *DocumentService) resolveCollection(ctx context.Context, target string) (domain.CollectionID, error) {
	if target == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(target, 10, 64); err == nil {
		if n <= 0 {
			return 0, domain.NewValidationError("collection", "id must be positive")
		}
		return domain.CollectionID(n), nil
	}

	collections, err := s.collections.ListCollections(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve collection %s: %w", target, err)
	}
	for _, col := range collections {
		if strings.EqualFold(strings.TrimSpace(col.Name), target) {
			return col.ID, nil
		}
	}
	return 0, domain.NewValidationError("collection", fmt.Sprintf("no collection named %q", target))
}
