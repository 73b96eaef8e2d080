package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/logx"
	"github.com/bnema/rag-cli/internal/metrics"
	"github.com/bnema/rag-cli/internal/ports"
)

// RequestBuilder creates a fresh request carrying the given headers. It is
// called once per attempt, so a retried request never reuses a consumed body.
type RequestBuilder func(ctx context.Context, header http.Header) (*http.Request, error)

// Executor sends authenticated requests. An access token rejected with 401 is
// refreshed at most once per call and the request is replayed at most once.
type Executor struct {
	transport   transport
	credentials ports.CredentialStore
	refresher   ports.TokenRefresher
	metrics     *metrics.Metrics

	refreshes singleflight.Group
}

type ExecutorConfig struct {
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Credentials    ports.CredentialStore
	Refresher      ports.TokenRefresher
	Metrics        *metrics.Metrics
}

func NewExecutor(cfg ExecutorConfig) (*Executor, error) {
	if cfg.Credentials == nil {
		return nil, errors.New("credential store is required")
	}
	if cfg.Refresher == nil {
		return nil, errors.New("token refresher is required")
	}

	return &Executor{
		transport: transport{
			client:  cfg.HTTPClient,
			timeout: cfg.RequestTimeout,
			metrics: cfg.Metrics,
		},
		credentials: cfg.Credentials,
		refresher:   cfg.Refresher,
		metrics:     cfg.Metrics,
	}, nil
}

func (e *Executor) Do(ctx context.Context, build RequestBuilder) (Response, error) {
	creds, err := e.credentials.Get(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("load credentials: %w", err)
	}

	resp, err := e.attempt(ctx, build, creds.Access)
	if !IsUnauthorized(err) || !creds.HasRefresh() {
		return resp, err
	}

	access, err := e.refresh(ctx, creds.Refresh)
	if err != nil {
		return Response{}, err
	}

	e.metrics.IncRetry()
	return e.attempt(ctx, build, access)
}

func (e *Executor) attempt(ctx context.Context, build RequestBuilder, access string) (Response, error) {
	reqCtx, cancel := e.transport.requestContext(ctx)
	defer cancel()

	header := http.Header{}
	if access = strings.TrimSpace(access); access != "" {
		header.Set("Authorization", "Bearer "+access)
	}

	req, err := build(reqCtx, header)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}

	logx.WithRequest(logx.Ctx(ctx), req.Method, req.URL.Path).Debug("api request")
	return e.transport.send(req)
}

// refresh exchanges the refresh token for a new access token and stores it.
// Concurrent callers holding the same refresh token share one exchange. If
// the exchange fails the stored credentials are cleared.
func (e *Executor) refresh(ctx context.Context, refreshToken string) (string, error) {
	log := logx.Ctx(ctx)
	log.Debug("access token rejected, refreshing")

	result := e.refreshes.DoChan(refreshToken, func() (any, error) {
		// The exchange outlives any single caller so that one canceled
		// caller does not fail the others waiting on it.
		shared := context.WithoutCancel(ctx)

		access, err := e.refresher.Refresh(shared, refreshToken)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(access) == "" {
			return "", errors.New("refresh response carried no access token")
		}
		if err := e.credentials.SetAccess(shared, access); err != nil {
			return "", fmt.Errorf("store refreshed access token: %w", err)
		}
		return access, nil
	})

	select {
	case <-ctx.Done():
		e.metrics.IncRefresh(metrics.RefreshCanceled)
		return "", ctx.Err()
	case res := <-result:
		if res.Err == nil {
			e.metrics.IncRefresh(metrics.RefreshSucceeded)
			log.Debug("access token refreshed")
			return res.Val.(string), nil
		}

		e.metrics.IncRefresh(metrics.RefreshFailed)
		log.Warn("token refresh failed, clearing credentials", "err", res.Err)

		expired := fmt.Errorf("%w: %w", domain.ErrAuthenticationExpired, res.Err)
		if clearErr := e.credentials.Clear(context.WithoutCancel(ctx)); clearErr != nil {
			return "", errors.Join(expired, fmt.Errorf("clear credentials: %w", clearErr))
		}
		return "", expired
	}
}
