package domain

import (
	"strings"

	"github.com/google/uuid"
)

type TaskID string

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusCancelled TaskStatus = "cancelled"

	// TaskStatusLost is never sent by the server. The poller uses it when the
	// status fetch itself fails.
	TaskStatusLost TaskStatus = "lost"
)

const QueuedTaskMessage = "Task queued..."

// ParseTaskStatus normalizes the server spelling of a status.
func ParseTaskStatus(raw string) TaskStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "pending", "queued":
		return TaskStatusPending
	case "running", "processing", "started":
		return TaskStatusRunning
	case "completed", "complete", "succeeded", "success":
		return TaskStatusCompleted
	case "failed", "error":
		return TaskStatusFailed
	case "cancelled", "canceled":
		return TaskStatusCancelled
	case "lost":
		return TaskStatusLost
	default:
		return TaskStatusRunning
	}
}

// Terminal reports whether no further state change can follow.
func (s TaskStatus) Terminal() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusFailed, TaskStatusCancelled, TaskStatusLost:
		return true
	default:
		return false
	}
}

// TaskRecord is one snapshot of a server-tracked background job.
type TaskRecord struct {
	ID       TaskID
	Status   TaskStatus
	Progress int
	Message  string
	Error    string
	Result   map[string]any
}

// QueuedTask is the placeholder published before the first status fetch.
func QueuedTask(id TaskID) TaskRecord {
	return TaskRecord{
		ID:       id,
		Status:   TaskStatusPending,
		Progress: 0,
		Message:  QueuedTaskMessage,
	}
}

func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// DisplayMessage picks the most useful line to show for the record.
// A completed task prefers result.message over the status message.
func (r TaskRecord) DisplayMessage() string {
	if r.Status == TaskStatusCompleted {
		if msg, ok := r.Result["message"].(string); ok && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	if (r.Status == TaskStatusFailed || r.Status == TaskStatusLost) && strings.TrimSpace(r.Error) != "" {
		return r.Error
	}
	return r.Message
}

// ValidateTaskID rejects ids that the tasks endpoint cannot route.
func ValidateTaskID(id TaskID) error {
	raw := strings.TrimSpace(string(id))
	if raw == "" {
		return NewValidationError("task id", "must not be empty")
	}
	if _, err := uuid.Parse(raw); err != nil {
		return NewValidationError("task id", "must be a UUID")
	}
	return nil
}
