package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatusNormalizesServerSpellings(t *testing.T) {
	tests := []struct {
		raw  string
		want TaskStatus
	}{
		{raw: "pending", want: TaskStatusPending},
		{raw: "", want: TaskStatusPending},
		{raw: "processing", want: TaskStatusRunning},
		{raw: "RUNNING", want: TaskStatusRunning},
		{raw: "completed", want: TaskStatusCompleted},
		{raw: "failed", want: TaskStatusFailed},
		{raw: "canceled", want: TaskStatusCancelled},
		{raw: "cancelled", want: TaskStatusCancelled},
		{raw: "warming_up", want: TaskStatusRunning},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTaskStatus(tt.raw))
		})
	}
}

func TestTaskStatusTerminalSet(t *testing.T) {
	assert.False(t, TaskStatusPending.Terminal())
	assert.False(t, TaskStatusRunning.Terminal())
	assert.True(t, TaskStatusCompleted.Terminal())
	assert.True(t, TaskStatusFailed.Terminal())
	assert.True(t, TaskStatusCancelled.Terminal())
	assert.True(t, TaskStatusLost.Terminal())
}

func TestQueuedTaskPlaceholder(t *testing.T) {
	record := QueuedTask("t1")

	assert.Equal(t, TaskID("t1"), record.ID)
	assert.Equal(t, TaskStatusPending, record.Status)
	assert.Equal(t, 0, record.Progress)
	assert.Equal(t, "Task queued...", record.Message)
}

func TestDisplayMessagePrefersResultMessageOnCompletion(t *testing.T) {
	record := TaskRecord{
		Status:  TaskStatusCompleted,
		Message: "Task completed.",
		Result:  map[string]any{"message": "Indexed 3 chunks"},
	}
	assert.Equal(t, "Indexed 3 chunks", record.DisplayMessage())

	record.Result = map[string]any{"chunks": 3}
	assert.Equal(t, "Task completed.", record.DisplayMessage())

	failed := TaskRecord{Status: TaskStatusFailed, Message: "Parsing", Error: "unreadable pdf"}
	assert.Equal(t, "unreadable pdf", failed.DisplayMessage())
}

func TestClampProgress(t *testing.T) {
	assert.Equal(t, 0, ClampProgress(-3))
	assert.Equal(t, 40, ClampProgress(40))
	assert.Equal(t, 100, ClampProgress(250))
}

func TestValidateTaskID(t *testing.T) {
	require.NoError(t, ValidateTaskID("0b5f8f5e-7c55-4c43-9d2a-1f6f43d1a5b2"))

	err := ValidateTaskID("")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	err = ValidateTaskID("../../etc")
	require.Error(t, err)
	assert.ErrorContains(t, err, "must be a UUID")
}

func TestValidateIngestURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "https", raw: " https://example.com/paper.html ", want: "https://example.com/paper.html"},
		{name: "http", raw: "http://127.0.0.1:9000/doc.txt", want: "http://127.0.0.1:9000/doc.txt"},
		{name: "empty", raw: "  ", wantErr: "must not be empty"},
		{name: "relative", raw: "docs/paper.html", wantErr: "not a valid absolute URL"},
		{name: "ftp", raw: "ftp://example.com/file.txt", wantErr: "scheme must be http or https"},
		{name: "no host", raw: "https:///path", wantErr: "host is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateIngestURL(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateUploadPath(t *testing.T) {
	require.NoError(t, ValidateUploadPath("notes/README.MD"))
	require.NoError(t, ValidateUploadPath("paper.pdf"))

	err := ValidateUploadPath("archive.zip")
	require.Error(t, err)
	assert.ErrorContains(t, err, `unsupported format ".zip"`)

	err = ValidateUploadPath("Makefile")
	require.Error(t, err)
	assert.ErrorContains(t, err, "(none)")
}

func TestValidateDocumentName(t *testing.T) {
	require.NoError(t, ValidateDocumentName("paper.pdf"))
	assert.Error(t, ValidateDocumentName(""))
	assert.Error(t, ValidateDocumentName("../secrets.txt"))
	assert.Error(t, ValidateDocumentName(`dir\file.txt`))
}

func TestPreferencesDefaultsAndValidation(t *testing.T) {
	prefs := Preferences{}.WithDefaults()
	assert.Equal(t, DefaultPreferences(), prefs)
	require.NoError(t, prefs.Validate())

	assert.Error(t, Preferences{ResultCount: 0, SearchMode: SearchModeFast}.Validate())
	assert.Error(t, Preferences{ResultCount: MaxResultCount + 1, SearchMode: SearchModeFast}.Validate())
	assert.Error(t, Preferences{ResultCount: 3, SearchMode: "semantic"}.Validate())
}

func TestValidationErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("upload url: %w", NewValidationError("url", "host is required"))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "url", validationErr.Field)
	assert.Equal(t, "upload url: invalid url: host is required", err.Error())
}

func TestCredentialsPresence(t *testing.T) {
	assert.True(t, Credentials{}.IsZero())
	assert.False(t, Credentials{Access: "a"}.HasRefresh())
	assert.True(t, Credentials{Access: "a", Refresh: "r"}.HasRefresh())
	assert.False(t, Credentials{Access: "a", Refresh: "  "}.HasRefresh())
}

func TestParseChatID(t *testing.T) {
	id, err := ParseChatID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, ChatID(42), id)

	for _, raw := range []string{"", "0", "-3", "abc", "4.2"} {
		_, err := ParseChatID(raw)
		assert.True(t, IsValidationError(err), "raw %q", raw)
	}
}

func TestParseFeedbackRating(t *testing.T) {
	for raw, want := range map[string]FeedbackRating{"up": RatingUp, " UP ": RatingUp, "+": RatingUp, "down": RatingDown, "bad": RatingDown} {
		got, err := ParseFeedbackRating(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, want, got)
	}

	_, err := ParseFeedbackRating("sideways")
	assert.True(t, IsValidationError(err))
}
