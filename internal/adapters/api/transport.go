package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/rag-cli/internal/metrics"
)

const (
	maxResponseBytes      = 4 << 20
	defaultRequestTimeout = 30 * time.Second
)

var ErrResponseTooLarge = errors.New("response body too large")

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// transport sends one request and reads its body under a size limit.
type transport struct {
	client  *http.Client
	timeout time.Duration
	metrics *metrics.Metrics
	now     func() time.Time
}

func (t transport) httpClient() *http.Client {
	if t.client != nil {
		return t.client
	}
	return http.DefaultClient
}

// requestContext applies the default timeout unless the caller already set a
// deadline.
func (t transport) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := t.timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// send performs req. A non-2xx status yields both the Response and a
// *StatusError.
func (t transport) send(req *http.Request) (Response, error) {
	now := t.now
	if now == nil {
		now = time.Now
	}
	started := now()

	resp, err := t.httpClient().Do(req)
	if err != nil {
		t.metrics.ObserveRequest(req.Method, 0, now().Sub(started))
		return Response{}, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := readAllWithLimit(resp.Body, maxResponseBytes)
	t.metrics.ObserveRequest(req.Method, resp.StatusCode, now().Sub(started))
	if err != nil {
		return Response{}, fmt.Errorf("%s %s: read body: %w", req.Method, req.URL.Path, err)
	}

	out := Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return out, newStatusError(resp.StatusCode, body)
	}
	return out, nil
}

func readAllWithLimit(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrResponseTooLarge, limit)
	}
	return data, nil
}
