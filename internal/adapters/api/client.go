// Package api is the HTTP client of the RAG backend. Authenticated calls go
// through Executor; sign-in and token refresh are sent without credentials.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/rag-cli/internal/metrics"
	"github.com/bnema/rag-cli/internal/ports"
)

const DefaultBaseURL = "http://127.0.0.1:8000/api"

type Config struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Credentials    ports.CredentialStore
	Metrics        *metrics.Metrics
}

type Client struct {
	baseURL   *url.URL
	transport transport
	exec      *Executor
}

var (
	_ ports.TokenRefresher = (*Client)(nil)
	_ ports.AuthAPI        = (*Client)(nil)
	_ ports.TaskAPI        = (*Client)(nil)
	_ ports.DocumentAPI    = (*Client)(nil)
	_ ports.ChatAPI        = (*Client)(nil)
	_ ports.CollectionAPI  = (*Client)(nil)
	_ ports.SearchAPI      = (*Client)(nil)
	_ ports.SettingsAPI    = (*Client)(nil)
)

func NewClient(cfg Config) (*Client, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: base,
		transport: transport{
			client:  cfg.HTTPClient,
			timeout: cfg.RequestTimeout,
			metrics: cfg.Metrics,
		},
	}

	exec, err := NewExecutor(ExecutorConfig{
		HTTPClient:     cfg.HTTPClient,
		RequestTimeout: cfg.RequestTimeout,
		Credentials:    cfg.Credentials,
		Refresher:      c,
		Metrics:        cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	c.exec = exec

	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("api base url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/")
	parsed.RawPath = ""
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed, nil
}

// endpoint appends escaped path segments to the base URL. The result always
// ends with a slash, as the backend routes require.
func (c *Client) endpoint(query url.Values, segments ...string) string {
	u := *c.baseURL

	escaped := make([]string, 0, len(segments))
	plain := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
		plain = append(plain, segment)
	}
	u.Path = c.baseURL.Path + "/" + strings.Join(plain, "/") + "/"
	u.RawPath = c.baseURL.EscapedPath() + "/" + strings.Join(escaped, "/") + "/"
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// call sends an authenticated JSON request and decodes the response into out
// when out is non-nil.
func (c *Client) call(ctx context.Context, method string, endpoint string, in any, out any) error {
	var payload []byte
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = encoded
	}

	resp, err := c.exec.Do(ctx, func(ctx context.Context, header http.Header) (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
		if err != nil {
			return nil, err
		}
		copyHeader(req.Header, header)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		return req, nil
	})
	if err != nil {
		return err
	}

	return decodeBody(resp, out)
}

// callAnonymous sends a JSON request without credentials or refresh.
func (c *Client) callAnonymous(ctx context.Context, method string, endpoint string, in any, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	reqCtx, cancel := c.transport.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.transport.send(req)
	if err != nil {
		return err
	}
	return decodeBody(resp, out)
}

func decodeBody(resp Response, out any) error {
	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func copyHeader(dst, src http.Header) {
	for key, values := range src {
		dst[key] = append([]string(nil), values...)
	}
}
