package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/communityos/internal/common"
	"github.com/dmitrijs2005/communityos/internal/logging"
	"github.com/google/uuid"
)

// TokenStore is the slice of the durable key/value store the transport
// needs: reading the token and purging the session record.
type TokenStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// authTransport injects the stored bearer token into outgoing requests and
// purges the stored session when the backend answers 401.
type authTransport struct {
	base    http.RoundTripper
	tokens  TokenStore
	log     logging.Logger
	metrics *Metrics

	mu             sync.RWMutex
	onUnauthorized []func(ctx context.Context)
}

func newAuthTransport(base http.RoundTripper, tokens TokenStore, log logging.Logger, m *Metrics) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, tokens: tokens, log: log, metrics: m}
}

func (t *authTransport) subscribe(fn func(ctx context.Context)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUnauthorized = append(t.onUnauthorized, fn)
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(ctx)
	t.withCredentials(ctx, req)
	if req.Header.Get(common.RequestIDHeaderName) == "" {
		req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	started := t.metrics.start()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.metrics.done(req.Method, 0, started)
		return nil, err
	}
	t.metrics.done(req.Method, resp.StatusCode, started)

	if resp.StatusCode == http.StatusUnauthorized {
		t.log.Warn(ctx, "backend rejected credentials, purging stored session",
			"method", req.Method, "path", req.URL.Path,
			"request_id", req.Header.Get(common.RequestIDHeaderName))
		t.metrics.purged()
		t.purge(context.WithoutCancel(ctx))
	}

	return resp, nil
}

func (t *authTransport) withCredentials(ctx context.Context, req *http.Request) {
	req.Header.Del(common.AuthorizationHeaderName)

	token, ok, err := t.tokens.Get(ctx, common.TokenStorageKey)
	if err != nil {
		t.log.Warn(ctx, "token read failed, sending request without credentials", "error", err)
		return
	}
	if !ok || token == "" {
		return
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
}

func (t *authTransport) purge(ctx context.Context) {
	if err := t.tokens.Delete(ctx, common.TokenStorageKey, common.UserStorageKey); err != nil {
		t.log.Error(ctx, "failed to purge stored session", "error", err)
	}

	t.mu.RLock()
	subscribers := append([]func(context.Context){}, t.onUnauthorized...)
	t.mu.RUnlock()

	for _, fn := range subscribers {
		fn(ctx)
	}
}
