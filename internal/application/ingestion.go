package application

import (
	"context"
	"fmt"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/logx"
	"github.com/bnema/rag-cli/internal/ports"
)

// IngestionEvent is a task update plus, after a completed task, the
// refreshed document listing.
type IngestionEvent struct {
	TaskUpdate
	Documents  []domain.Document
	ListingErr error
}

// IngestionService queues documents for indexing and follows the resulting task.
type IngestionService struct {
	documents ports.DocumentAPI
	tasks     ports.TaskAPI
	poller    *TaskPoller
}

func NewIngestionService(documents ports.DocumentAPI, tasks ports.TaskAPI, poller *TaskPoller) *IngestionService {
	if poller == nil {
		poller = NewTaskPoller(tasks)
	}
	return &IngestionService{documents: documents, tasks: tasks, poller: poller}
}

func (s *IngestionService) UploadFile(ctx context.Context, path string) (domain.TaskID, error) {
	if err := domain.ValidateUploadPath(path); err != nil {
		return "", err
	}
	id, err := s.documents.UploadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	return id, nil
}

func (s *IngestionService) UploadURL(ctx context.Context, rawURL string) (domain.TaskID, error) {
	normalized, err := domain.ValidateIngestURL(rawURL)
	if err != nil {
		return "", err
	}
	id, err := s.documents.UploadURL(ctx, normalized)
	if err != nil {
		return "", fmt.Errorf("ingest %s: %w", normalized, err)
	}
	return id, nil
}

// Track polls the task and forwards each update. Once the task completes the
// document listing is fetched before the final event is delivered.
func (s *IngestionService) Track(ctx context.Context, id domain.TaskID, onEvent func(IngestionEvent)) (*PollHandle, error) {
	if err := domain.ValidateTaskID(id); err != nil {
		return nil, err
	}

	handle := s.poller.Start(ctx, id, func(update TaskUpdate) {
		event := IngestionEvent{TaskUpdate: update}
		if update.RefreshListing() {
			docs, err := s.documents.ListDocuments(ctx)
			if err != nil {
				logx.WithTask(logx.Ctx(ctx), id).Warn("document listing refresh failed", "error", err)
				event.ListingErr = err
			}
			event.Documents = docs
		}
		if onEvent != nil {
			onEvent(event)
		}
	})
	return handle, nil
}

// Wait tracks the task until it ends and returns the last event. A poll that
// is stopped or replaced before a terminal status yields ErrPollingStopped.
func (s *IngestionService) Wait(ctx context.Context, id domain.TaskID, onEvent func(IngestionEvent)) (IngestionEvent, error) {
	var last IngestionEvent
	handle, err := s.Track(ctx, id, func(event IngestionEvent) {
		last = event
		if onEvent != nil {
			onEvent(event)
		}
	})
	if err != nil {
		return IngestionEvent{}, err
	}

	<-handle.Done()
	if !last.Terminal() {
		if err := ctx.Err(); err != nil {
			return last, err
		}
		return last, fmt.Errorf("task %s: %w", id, domain.ErrPollingStopped)
	}
	return last, last.Err
}

// Status fetches a single snapshot of the task without starting a poll.
func (s *IngestionService) Status(ctx context.Context, id domain.TaskID) (domain.TaskRecord, error) {
	if err := domain.ValidateTaskID(id); err != nil {
		return domain.TaskRecord{}, err
	}
	record, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return domain.TaskRecord{}, fmt.Errorf("task %s: %w", id, err)
	}
	if record.ID == "" {
		record.ID = id
	}
	record.Progress = domain.ClampProgress(record.Progress)
	return record, nil
}

func (s *IngestionService) Cancel(ctx context.Context, id domain.TaskID) error {
	if err := domain.ValidateTaskID(id); err != nil {
		return err
	}
	if err := s.tasks.CancelTask(ctx, id); err != nil {
		return fmt.Errorf("cancel task %s: %w", id, err)
	}
	return nil
}

func (s *IngestionService) Poller() *TaskPoller {
	return s.poller
}
