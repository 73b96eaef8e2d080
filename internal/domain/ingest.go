package domain

import (
	"net/url"
	"strings"
)

// ValidateIngestURL rejects URLs that should never reach the ingestion endpoint.
func ValidateIngestURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", NewValidationError("url", "must not be empty")
	}

	parsed, err := url.ParseRequestURI(trimmed)
	if err != nil {
		return "", NewValidationError("url", "not a valid absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", NewValidationError("url", "scheme must be http or https")
	}
	if parsed.Host == "" {
		return "", NewValidationError("url", "host is required")
	}

	return parsed.String(), nil
}
