package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/rag-cli/internal/domain"
)

// flexID accepts both numeric and string ids.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

// apiTime tolerates null and empty timestamps.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, *raw)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", *raw, err)
	}
	t.Time = parsed
	return nil
}

type askRequest struct {
	Question       string `json:"question"`
	ConversationID string `json:"conversation_id,omitempty"`
}

type chatJSON struct {
	ID             flexID   `json:"id"`
	ConversationID flexID   `json:"conversation_id"`
	Question       string   `json:"question"`
	Answer         string   `json:"answer"`
	Title          string   `json:"title"`
	Sources        []string `json:"sources"`
	CreatedAt      apiTime  `json:"created_at"`
	UpdatedAt      apiTime  `json:"updated_at"`
}

type chatHistoryResponse struct {
	Count int        `json:"count"`
	Chats []chatJSON `json:"chats"`
}

type messageJSON struct {
	Role      string   `json:"role"`
	Content   string   `json:"content"`
	Sources   []string `json:"sources"`
	CreatedAt apiTime  `json:"created_at"`
}

type conversationJSON struct {
	ID       flexID        `json:"id"`
	Title    string        `json:"title"`
	Messages []messageJSON `json:"messages"`
}

func (c *Client) Ask(ctx context.Context, question string, conversationID domain.ConversationID) (domain.ChatAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.ChatAnswer{}, domain.NewValidationError("question", "must not be empty")
	}

	var out chatJSON
	req := askRequest{Question: question, ConversationID: string(conversationID)}
	if err := c.call(ctx, http.MethodPost, c.endpoint(nil, "chat"), req, &out); err != nil {
		return domain.ChatAnswer{}, fmt.Errorf("ask: %w", err)
	}

	id, _ := strconv.ParseInt(string(out.ID), 10, 64)
	conv := domain.ConversationID(out.ConversationID)
	if conv == "" {
		conv = conversationID
	}
	return domain.ChatAnswer{
		ID:             id,
		ConversationID: conv,
		Question:       out.Question,
		Answer:         out.Answer,
		Sources:        out.Sources,
		CreatedAt:      out.CreatedAt.Time,
	}, nil
}

// ChatHistory lists past exchanges. Entries without a title are labelled by
// their question.
func (c *Client) ChatHistory(ctx context.Context) ([]domain.ConversationSummary, error) {
	var out chatHistoryResponse
	if err := c.call(ctx, http.MethodGet, c.endpoint(nil, "chat", "history"), nil, &out); err != nil {
		return nil, fmt.Errorf("chat history: %w", err)
	}

	summaries := make([]domain.ConversationSummary, 0, len(out.Chats))
	for _, chat := range out.Chats {
		title := strings.TrimSpace(chat.Title)
		if title == "" {
			title = strings.TrimSpace(chat.Question)
		}
		id := chat.ConversationID
		if id == "" {
			id = chat.ID
		}
		updated := chat.UpdatedAt.Time
		if updated.IsZero() {
			updated = chat.CreatedAt.Time
		}
		summaries = append(summaries, domain.ConversationSummary{
			ID:        domain.ConversationID(id),
			Title:     title,
			CreatedAt: chat.CreatedAt.Time,
			UpdatedAt: updated,
		})
	}
	return summaries, nil
}

func (c *Client) Conversation(ctx context.Context, id domain.ConversationID) (domain.Conversation, error) {
	raw := strings.TrimSpace(string(id))
	if raw == "" {
		return domain.Conversation{}, domain.NewValidationError("conversation id", "must not be empty")
	}
	if _, err := strconv.ParseUint(raw, 10, 64); err != nil {
		return domain.Conversation{}, domain.NewValidationError("conversation id", "must be a positive number")
	}

	var out conversationJSON
	if err := c.call(ctx, http.MethodGet, c.endpoint(nil, "chat", "conversations", raw), nil, &out); err != nil {
		return domain.Conversation{}, fmt.Errorf("get conversation %s: %w", raw, err)
	}

	conv := domain.Conversation{ID: domain.ConversationID(raw), Title: out.Title}
	for _, msg := range out.Messages {
		conv.Messages = append(conv.Messages, domain.ChatMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			Sources:   msg.Sources,
			CreatedAt: msg.CreatedAt.Time,
		})
	}
	return conv, nil
}

type feedbackRequest struct {
	Rating  string `json:"rating"`
	Comment string `json:"comment"`
}

type feedbackJSON struct {
	Message   string  `json:"message"`
	ChatID    flexID  `json:"chat_id"`
	Rating    string  `json:"rating"`
	Comment   string  `json:"comment"`
	CreatedAt apiTime `json:"created_at"`
}

type citationsJSON struct {
	ChatID    flexID `json:"chat_id"`
	Question  string `json:"question"`
	Citations []struct {
		Index  int    `json:"index"`
		Text   string `json:"text"`
		Source string `json:"source"`
	} `json:"citations"`
}

// Feedback rates an answer. Submitting again for the same chat replaces the
// earlier rating.
func (c *Client) Feedback(ctx context.Context, id domain.ChatID, rating domain.FeedbackRating, comment string) (domain.ChatFeedback, error) {
	if id <= 0 {
		return domain.ChatFeedback{}, domain.NewValidationError("chat id", "must be a positive number")
	}
	if rating != domain.RatingUp && rating != domain.RatingDown {
		return domain.ChatFeedback{}, domain.NewValidationError("rating", `must be "up" or "down"`)
	}

	chatID := strconv.FormatInt(int64(id), 10)
	var out feedbackJSON
	req := feedbackRequest{Rating: string(rating), Comment: strings.TrimSpace(comment)}
	if err := c.call(ctx, http.MethodPost, c.endpoint(nil, "chat", chatID, "feedback"), req, &out); err != nil {
		return domain.ChatFeedback{}, fmt.Errorf("chat %s feedback: %w", chatID, err)
	}

	got := out.Rating
	if got == "" {
		got = string(rating)
	}
	return domain.ChatFeedback{
		ChatID:    id,
		Rating:    domain.FeedbackRating(got),
		Comment:   out.Comment,
		Message:   out.Message,
		CreatedAt: out.CreatedAt.Time,
	}, nil
}

// Citations returns the chunks an answer cited, in citation order.
func (c *Client) Citations(ctx context.Context, id domain.ChatID) (domain.ChatCitations, error) {
	if id <= 0 {
		return domain.ChatCitations{}, domain.NewValidationError("chat id", "must be a positive number")
	}

	chatID := strconv.FormatInt(int64(id), 10)
	var out citationsJSON
	if err := c.call(ctx, http.MethodGet, c.endpoint(nil, "chat", chatID, "citations"), nil, &out); err != nil {
		return domain.ChatCitations{}, fmt.Errorf("chat %s citations: %w", chatID, err)
	}

	result := domain.ChatCitations{ChatID: id, Question: out.Question}
	for i, cite := range out.Citations {
		index := cite.Index
		if index <= 0 {
			index = i + 1
		}
		result.Citations = append(result.Citations, domain.Citation{Index: index, Text: cite.Text, Source: cite.Source})
	}
	return result, nil
}
