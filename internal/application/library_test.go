package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentServiceListSortsByName(t *testing.T) {
	api := mocks.NewMockDocumentAPI(t)
	service := NewDocumentService(api, mocks.NewMockCollectionAPI(t))
	api.EXPECT().ListDocuments(mockAnyContext()).Return([]domain.Document{
		{Name: "zeta.md"}, {Name: "Alpha.pdf"}, {Name: "beta.txt"},
	}, nil)

	docs, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, []string{"Alpha.pdf", "beta.txt", "zeta.md"}, []string{docs[0].Name, docs[1].Name, docs[2].Name})
}

func TestDocumentServiceRejectsUnsafeNames(t *testing.T) {
	service := NewDocumentService(mocks.NewMockDocumentAPI(t), mocks.NewMockCollectionAPI(t))

	for _, name := range []string{"", "  ", "../etc/passwd", "a/b.md", `a\b.md`, ".."} {
		err := service.Delete(context.Background(), name)
		assert.True(t, domain.IsValidationError(err), "name %q", name)

		_, err = service.Show(context.Background(), name)
		assert.True(t, domain.IsValidationError(err), "name %q", name)
	}
}

func TestDocumentServiceShowAndDelete(t *testing.T) {
	api := mocks.NewMockDocumentAPI(t)
	service := NewDocumentService(api, mocks.NewMockCollectionAPI(t))
	api.EXPECT().GetDocument(mockAnyContext(), "notes.md").Return(domain.DocumentPreview{Name: "notes.md", Content: "# Notes"}, nil)
	api.EXPECT().DeleteDocument(mockAnyContext(), "notes.md").Return(nil)

	preview, err := service.Show(context.Background(), " notes.md ")
	require.NoError(t, err)
	assert.Equal(t, "# Notes", preview.Content)
	require.NoError(t, service.Delete(context.Background(), "notes.md"))
}

func TestDocumentServiceCollectionsSortedByName(t *testing.T) {
	collections := mocks.NewMockCollectionAPI(t)
	service := NewDocumentService(mocks.NewMockDocumentAPI(t), collections)
	collections.EXPECT().ListCollections(mockAnyContext()).Return([]domain.Collection{
		{ID: 2, Name: "papers"}, {ID: 1, Name: "Notes"},
	}, nil)

	got, err := service.Collections(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Notes", got[0].Name)
	assert.Equal(t, "papers", got[1].Name)
}

func TestDocumentServiceCreateCollection(t *testing.T) {
	collections := mocks.NewMockCollectionAPI(t)
	service := NewDocumentService(mocks.NewMockDocumentAPI(t), collections)
	collections.EXPECT().CreateCollection(mockAnyContext(), "Drafts", "wip").Return(domain.Collection{ID: 8, Name: "Drafts"}, nil)

	created, err := service.CreateCollection(context.Background(), " Drafts ", "wip")
	require.NoError(t, err)
	assert.Equal(t, domain.CollectionID(8), created.ID)

	_, err = service.CreateCollection(context.Background(), " ", "")
	assert.True(t, domain.IsValidationError(err))
}

func TestDocumentServiceMoveResolvesCollection(t *testing.T) {
	tests := []struct {
		name   string
		target string
		list   bool
		want   domain.CollectionID
	}{
		{name: "by id", target: "5", want: 5},
		{name: "by name", target: "PAPERS", list: true, want: 3},
		{name: "unfiled", target: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collections := mocks.NewMockCollectionAPI(t)
			service := NewDocumentService(mocks.NewMockDocumentAPI(t), collections)
			if tt.list {
				collections.EXPECT().ListCollections(mockAnyContext()).Return([]domain.Collection{{ID: 3, Name: "Papers"}}, nil).Once()
			}
			collections.EXPECT().MoveDocument(mockAnyContext(), "notes.md", tt.want).Return(domain.DocumentMove{Document: "notes.md"}, nil).Once()

			move, err := service.Move(context.Background(), " notes.md ", tt.target)
			require.NoError(t, err)
			assert.Equal(t, "notes.md", move.Document)
		})
	}
}

func TestDocumentServiceMoveRejectsUnknownCollection(t *testing.T) {
	collections := mocks.NewMockCollectionAPI(t)
	service := NewDocumentService(mocks.NewMockDocumentAPI(t), collections)
	collections.EXPECT().ListCollections(mockAnyContext()).Return([]domain.Collection{{ID: 3, Name: "Papers"}}, nil)

	_, err := service.Move(context.Background(), "notes.md", "Archive")
	require.True(t, domain.IsValidationError(err))
	assert.ErrorContains(t, err, `no collection named "Archive"`)

	_, err = service.Move(context.Background(), "notes.md", "-4")
	assert.True(t, domain.IsValidationError(err))
	_, err = service.Move(context.Background(), "../x.md", "3")
	assert.True(t, domain.IsValidationError(err))
}

func TestChatServiceAsk(t *testing.T) {
	api := mocks.NewMockChatAPI(t)
	service := NewChatService(api)
	api.EXPECT().Ask(mockAnyContext(), "what is RAG?", domain.ConversationID("12")).Return(domain.ChatAnswer{
		ConversationID: "12",
		Answer:         "Retrieval augmented generation.",
	}, nil)

	answer, err := service.Ask(context.Background(), " what is RAG? ", " 12 ")
	require.NoError(t, err)
	assert.Equal(t, domain.ConversationID("12"), answer.ConversationID)

	_, err = service.Ask(context.Background(), "\n", "")
	assert.True(t, domain.IsValidationError(err))
}

func TestChatServiceHistoryMostRecentFirst(t *testing.T) {
	api := mocks.NewMockChatAPI(t)
	service := NewChatService(api)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	api.EXPECT().ChatHistory(mockAnyContext()).Return([]domain.ConversationSummary{
		{ID: "1", UpdatedAt: base},
		{ID: "3", UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "2", UpdatedAt: base.Add(time.Hour)},
	}, nil)

	history, err := service.History(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, domain.ConversationID("3"), history[0].ID)
	assert.Equal(t, domain.ConversationID("1"), history[2].ID)
}

func TestChatServiceConversationRequiresID(t *testing.T) {
	service := NewChatService(mocks.NewMockChatAPI(t))
	_, err := service.Conversation(context.Background(), " ")
	assert.True(t, domain.IsValidationError(err))
}

func TestChatServiceFeedback(t *testing.T) {
	api := mocks.NewMockChatAPI(t)
	service := NewChatService(api)
	api.EXPECT().Feedback(mockAnyContext(), domain.ChatID(42), domain.RatingUp, "clear answer").
		Return(domain.ChatFeedback{ChatID: 42, Rating: domain.RatingUp, Message: "Feedback submitted."}, nil)

	feedback, err := service.Feedback(context.Background(), 42, domain.RatingUp, " clear answer ")
	require.NoError(t, err)
	assert.Equal(t, "Feedback submitted.", feedback.Message)

	_, err = service.Feedback(context.Background(), 0, domain.RatingUp, "")
	assert.True(t, domain.IsValidationError(err))
}

func TestChatServiceCitationsOrderedByIndex(t *testing.T) {
	api := mocks.NewMockChatAPI(t)
	service := NewChatService(api)
	api.EXPECT().Citations(mockAnyContext(), domain.ChatID(42)).Return(domain.ChatCitations{
		ChatID:    42,
		Citations: []domain.Citation{{Index: 2, Source: "b.md"}, {Index: 1, Source: "a.md"}},
	}, nil)

	citations, err := service.Citations(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, citations.Citations, 2)
	assert.Equal(t, "a.md", citations.Citations[0].Source)
}

func TestSettingsServiceSetAPIKey(t *testing.T) {
	api := mocks.NewMockSettingsAPI(t)
	service := NewSettingsService(api)
	api.EXPECT().SetAPIKey(mockAnyContext(), "sk-test").Return(nil)

	require.NoError(t, service.SetAPIKey(context.Background(), " sk-test\n"))
	assert.True(t, domain.IsValidationError(service.SetAPIKey(context.Background(), "   ")))
}

func TestSettingsServiceShowAndTest(t *testing.T) {
	api := mocks.NewMockSettingsAPI(t)
	service := NewSettingsService(api)
	api.EXPECT().GetAPIKey(mockAnyContext()).Return(domain.APIKeyStatus{MaskedKey: "sk-...abcd", Provider: "openai"}, nil)
	api.EXPECT().TestAPIKey(mockAnyContext()).Return(domain.APIKeyTestResult{OK: false, Message: "invalid key"}, nil)

	status, err := service.APIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk-...abcd", status.MaskedKey)

	result, err := service.TestAPIKey(context.Background())
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, "invalid key", result.Message)
}
