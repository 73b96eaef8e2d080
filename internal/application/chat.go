package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/ports"
)

type ChatService struct {
	chat ports.ChatAPI
}

func NewChatService(chat ports.ChatAPI) *ChatService {
	return &ChatService{chat: chat}
}

// Ask sends a question. An empty conversation id starts a new conversation.
func (s *ChatService) Ask(ctx context.Context, question string, conversation domain.ConversationID) (domain.ChatAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.ChatAnswer{}, domain.NewValidationError("question", "must not be empty")
	}
	answer, err := s.chat.Ask(ctx, question, domain.ConversationID(strings.TrimSpace(string(conversation))))
	if err != nil {
		return domain.ChatAnswer{}, fmt.Errorf("ask: %w", err)
	}
	return answer, nil
}

// History lists conversations, most recently updated first.
func (s *ChatService) History(ctx context.Context) ([]domain.ConversationSummary, error) {
	history, err := s.chat.ChatHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("chat history: %w", err)
	}
	sorted := append([]domain.ConversationSummary(nil), history...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	return sorted, nil
}

func (s *ChatService) Conversation(ctx context.Context, id domain.ConversationID) (domain.Conversation, error) {
	if strings.TrimSpace(string(id)) == "" {
		return domain.Conversation{}, domain.NewValidationError("conversation id", "must not be empty")
	}
	conversation, err := s.chat.Conversation(ctx, id)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("get conversation %s: %w", id, err)
	}
	return conversation, nil
}

func (s *ChatService) Feedback(ctx context.Context, id domain.ChatID, rating domain.FeedbackRating, comment string) (domain.ChatFeedback, error) {
	if id <= 0 {
		return domain.ChatFeedback{}, domain.NewValidationError("chat id", "must be a positive number")
	}
	feedback, err := s.chat.Feedback(ctx, id, rating, strings.TrimSpace(comment))
	if err != nil {
		return domain.ChatFeedback{}, fmt.Errorf("feedback for chat %d: %w", id, err)
	}
	return feedback, nil
}

// Citations returns the cited chunks ordered by their index.
func (s *ChatService) Citations(ctx context.Context, id domain.ChatID) (domain.ChatCitations, error) {
	if id <= 0 {
		return domain.ChatCitations{}, domain.NewValidationError("chat id", "must be a positive number")
	}
	citations, err := s.chat.Citations(ctx, id)
	if err != nil {
		return domain.ChatCitations{}, fmt.Errorf("citations for chat %d: %w", id, err)
	}
	sort.SliceStable(citations.Citations, func(i, j int) bool {
		return citations.Citations[i].Index < citations.Citations[j].Index
	})
	return citations, nil
}
