package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxPlainErrorLen = 200

// StatusError is a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api status %d", e.StatusCode)
	}
	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized reports whether err carries a 401 response.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Unauthorized()
}

// IsNotFound reports whether err carries a 404 response.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

func newStatusError(statusCode int, body []byte) *StatusError {
	return &StatusError{StatusCode: statusCode, Message: errorMessage(body), Body: body}
}

type errorBody struct {
	Error   string `json:"error"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// errorMessage extracts the human readable part of an error body. The backend
// uses {"error": ...}; framework-level failures use {"detail": ...}.
func errorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var decoded errorBody
	if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
		for _, msg := range []string{decoded.Error, decoded.Detail, decoded.Message} {
			if msg = strings.TrimSpace(msg); msg != "" {
				return msg
			}
		}
		return ""
	}

	if strings.HasPrefix(trimmed, "<") || !utf8.ValidString(trimmed) {
		return ""
	}
	if len(trimmed) > maxPlainErrorLen {
		cut := maxPlainErrorLen
		for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
			cut--
		}
		return trimmed[:cut] + "..."
	}
	return trimmed
}

func asStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
