package domain

import (
	"path/filepath"
	"strings"
)

// SupportedDocumentExtensions lists the file types the ingestion pipeline accepts.
var SupportedDocumentExtensions = []string{".txt", ".md", ".pdf", ".docx"}

type Document struct {
	Name      string
	SizeBytes int64
}

type DocumentPreview struct {
	Name    string
	Content string
}

func ValidateDocumentName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewValidationError("document name", "must not be empty")
	}
	if strings.ContainsAny(trimmed, `/\`) || trimmed == "." || trimmed == ".." {
		return NewValidationError("document name", "must not contain path separators")
	}
	return nil
}

func ValidateUploadPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return NewValidationError("file", "path must not be empty")
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedDocumentExtensions {
		if ext == supported {
			return nil
		}
	}
	return NewValidationError("file", "unsupported format "+quoteOrNone(ext)+"; allowed: "+strings.Join(SupportedDocumentExtensions, ", "))
}

func quoteOrNone(ext string) string {
	if ext == "" {
		return "(none)"
	}
	return `"` + ext + `"`
}
