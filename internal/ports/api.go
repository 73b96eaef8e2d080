package ports

import (
	"context"

	"github.com/bnema/rag-cli/internal/domain"
)

type AuthAPI interface {
	SignIn(ctx context.Context, username, password string) (domain.Credentials, error)
	SignOut(ctx context.Context, refreshToken string) error
}

type TaskAPI interface {
	GetTask(ctx context.Context, id domain.TaskID) (domain.TaskRecord, error)
	CancelTask(ctx context.Context, id domain.TaskID) error
}

type DocumentAPI interface {
	UploadFile(ctx context.Context, path string) (domain.TaskID, error)
	UploadURL(ctx context.Context, rawURL string) (domain.TaskID, error)
	ListDocuments(ctx context.Context) ([]domain.Document, error)
	GetDocument(ctx context.Context, name string) (domain.DocumentPreview, error)
	DeleteDocument(ctx context.Context, name string) error
}

type ChatAPI interface {
	Ask(ctx context.Context, question string, conversationID domain.ConversationID) (domain.ChatAnswer, error)
	ChatHistory(ctx context.Context) ([]domain.ConversationSummary, error)
	Conversation(ctx context.Context, id domain.ConversationID) (domain.Conversation, error)
	Feedback(ctx context.Context, id domain.ChatID, rating domain.FeedbackRating, comment string) (domain.ChatFeedback, error)
	Citations(ctx context.Context, id domain.ChatID) (domain.ChatCitations, error)
}

type CollectionAPI interface {
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	CreateCollection(ctx context.Context, name, description string) (domain.Collection, error)
	// MoveDocument files the document under collection; zero removes it from
	// its collection.
	MoveDocument(ctx context.Context, name string, collection domain.CollectionID) (domain.DocumentMove, error)
}

type SearchAPI interface {
	Search(ctx context.Context, query string, topK int) (domain.SearchResponse, error)
	Rerank(ctx context.Context, query string, initialK, finalK int) (domain.SearchResponse, error)
	Suggest(ctx context.Context, query string) ([]string, error)
}

type SettingsAPI interface {
	GetAPIKey(ctx context.Context) (domain.APIKeyStatus, error)
	SetAPIKey(ctx context.Context, key string) error
	TestAPIKey(ctx context.Context) (domain.APIKeyTestResult, error)
}
