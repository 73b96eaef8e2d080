package api

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/bnema/rag-cli/internal/domain"
)

type taskResponse struct {
	ID       string         `json:"id"`
	Status   string         `json:"status"`
	Progress float64        `json:"progress"`
	Message  string         `json:"message"`
	Error    string         `json:"error"`
	Result   map[string]any `json:"result"`
}

func (r taskResponse) record(fallbackID domain.TaskID) domain.TaskRecord {
	id := domain.TaskID(r.ID)
	if id == "" {
		id = fallbackID
	}
	return domain.TaskRecord{
		ID:       id,
		Status:   domain.ParseTaskStatus(r.Status),
		Progress: domain.ClampProgress(int(math.Round(r.Progress))),
		Message:  r.Message,
		Error:    r.Error,
		Result:   r.Result,
	}
}

func (c *Client) GetTask(ctx context.Context, id domain.TaskID) (domain.TaskRecord, error) {
	if err := domain.ValidateTaskID(id); err != nil {
		return domain.TaskRecord{}, err
	}

	var out taskResponse
	if err := c.call(ctx, http.MethodGet, c.endpoint(nil, "tasks", string(id)), nil, &out); err != nil {
		return domain.TaskRecord{}, fmt.Errorf("get task %s: %w", id, err)
	}
	return out.record(id), nil
}

func (c *Client) CancelTask(ctx context.Context, id domain.TaskID) error {
	if err := domain.ValidateTaskID(id); err != nil {
		return err
	}
	if err := c.call(ctx, http.MethodPost, c.endpoint(nil, "tasks", string(id), "cancel"), nil, nil); err != nil {
		return fmt.Errorf("cancel task %s: %w", id, err)
	}
	return nil
}
