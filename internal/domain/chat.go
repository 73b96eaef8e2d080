package domain

import (
	"strconv"
	"strings"
	"time"
)

type ConversationID string

type ChatAnswer struct {
	ID             int64
	ConversationID ConversationID
	Question       string
	Answer         string
	Sources        []string
	CreatedAt      time.Time
}

type ConversationSummary struct {
	ID        ConversationID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChatMessage struct {
	Role      string
	Content   string
	Sources   []string
	CreatedAt time.Time
}

type Conversation struct {
	ID       ConversationID
	Title    string
	Messages []ChatMessage
}

// ChatID identifies a single question and answer exchange.
type ChatID int64

func ParseChatID(raw string) (ChatID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, NewValidationError("chat id", "must not be empty")
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || n <= 0 {
		return 0, NewValidationError("chat id", "must be a positive number")
	}
	return ChatID(n), nil
}

type FeedbackRating string

const (
	RatingUp   FeedbackRating = "up"
	RatingDown FeedbackRating = "down"
)

// ParseFeedbackRating accepts up/down and the +/- shorthands.
func ParseFeedbackRating(raw string) (FeedbackRating, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up", "+", "good":
		return RatingUp, nil
	case "down", "-", "bad":
		return RatingDown, nil
	default:
		return "", NewValidationError("rating", `must be "up" or "down"`)
	}
}

type ChatFeedback struct {
	ChatID    ChatID
	Rating    FeedbackRating
	Comment   string
	Message   string
	CreatedAt time.Time
}

// Citation is one retrieved chunk an answer was built from. Index is 1-based.
type Citation struct {
	Index  int
	Text   string
	Source string
}

type ChatCitations struct {
	ChatID    ChatID
	Question  string
	Citations []Citation
}
