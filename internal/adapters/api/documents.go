package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/rag-cli/internal/domain"
)

const (
	uploadField    = "document"
	maxUploadBytes = 64 << 20
)

type uploadResponse struct {
	TaskID  string `json:"task_id"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (r uploadResponse) taskID() (domain.TaskID, error) {
	id := domain.TaskID(strings.TrimSpace(r.TaskID))
	if id == "" {
		id = domain.TaskID(strings.TrimSpace(r.ID))
	}
	if id == "" {
		return "", errors.New("response carried no task id")
	}
	return id, nil
}

type uploadURLRequest struct {
	URL string `json:"url"`
}

type documentsResponse struct {
	Count     int            `json:"count"`
	Documents []documentJSON `json:"documents"`
}

type documentJSON struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
}

type documentPreviewJSON struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// UploadFile sends the file as multipart field "document" and returns the
// ingestion task id.
func (c *Client) UploadFile(ctx context.Context, path string) (domain.TaskID, error) {
	if err := domain.ValidateUploadPath(path); err != nil {
		return "", err
	}

	body, contentType, err := multipartFile(path)
	if err != nil {
		return "", err
	}

	endpoint := c.endpoint(nil, "upload")
	resp, err := c.exec.Do(ctx, func(ctx context.Context, header http.Header) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		copyHeader(req.Header, header)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", contentType)
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}

	var out uploadResponse
	if err := decodeBody(resp, &out); err != nil {
		return "", fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}
	id, err := out.taskID()
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}
	return id, nil
}

// multipartFile encodes the file once so every attempt can replay the same
// bytes.
func multipartFile(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, "", domain.NewValidationError("file", "is a directory")
	}
	if info.Size() > maxUploadBytes {
		return nil, "", domain.NewValidationError("file", fmt.Sprintf("larger than %d MiB", maxUploadBytes>>20))
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(uploadField, filepath.Base(path))
	if err != nil {
		return nil, "", fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finish multipart body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func (c *Client) UploadURL(ctx context.Context, rawURL string) (domain.TaskID, error) {
	target, err := domain.ValidateIngestURL(rawURL)
	if err != nil {
		return "", err
	}

	var out uploadResponse
	if err := c.call(ctx, http.MethodPost, c.endpoint(nil, "upload-url"), uploadURLRequest{URL: target}, &out); err != nil {
		return "", fmt.Errorf("ingest url: %w", err)
	}
	id, err := out.taskID()
	if err != nil {
		return "", fmt.Errorf("ingest url: %w", err)
	}
	return id, nil
}

func (c *Client) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	var out documentsResponse
	if err := c.call(ctx, http.MethodGet, c.endpoint(nil, "documents"), nil, &out); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]domain.Document, 0, len(out.Documents))
	for _, doc := range out.Documents {
		docs = append(docs, domain.Document{Name: doc.Name, SizeBytes: doc.SizeBytes})
	}
	return docs, nil
}

func (c *Client) GetDocument(ctx context.Context, name string) (domain.DocumentPreview, error) {
	if err := domain.ValidateDocumentName(name); err != nil {
		return domain.DocumentPreview{}, err
	}
	name = strings.TrimSpace(name)

	var out documentPreviewJSON
	if err := c.call(ctx, http.MethodGet, c.endpoint(nil, "documents", name), nil, &out); err != nil {
		return domain.DocumentPreview{}, fmt.Errorf("get document %q: %w", name, err)
	}
	if out.Name == "" {
		out.Name = name
	}
	return domain.DocumentPreview{Name: out.Name, Content: out.Content}, nil
}

func (c *Client) DeleteDocument(ctx context.Context, name string) error {
	if err := domain.ValidateDocumentName(name); err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	if err := c.call(ctx, http.MethodDelete, c.endpoint(nil, "documents", name), nil, nil); err != nil {
		return fmt.Errorf("delete document %q: %w", name, err)
	}
	return nil
}
