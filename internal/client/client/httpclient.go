package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/communityos/internal/logging"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout           = 30 * time.Second
	defaultOTPResendInterval = 30 * time.Second
	maxErrorBody             = 64 << 10
)

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL    string
	http       *http.Client
	transport  *authTransport
	log        logging.Logger
	otpLimiter *rate.Limiter
}

type options struct {
	timeout           time.Duration
	base              http.RoundTripper
	log               logging.Logger
	otpResendInterval time.Duration
	metrics           *Metrics
}

// Option configures New.
type Option func(*options)

// WithTimeout sets the per-request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithBaseTransport replaces http.DefaultTransport below the auth interceptors.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

// WithLogger sets the logger used by the client and its transport.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithOTPResendInterval sets the minimum delay between two SendOTP calls.
// Zero disables the throttle.
func WithOTPResendInterval(d time.Duration) Option {
	return func(o *options) { o.otpResendInterval = d }
}

// WithMetrics records request counts, latencies and session purges in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New builds a client for the API rooted at baseURL (including any "/api"
// prefix). tokens is read before every request and purged on 401.
func New(baseURL string, tokens TokenStore, opts ...Option) *HTTPClient {
	o := options{
		timeout:           defaultTimeout,
		log:               logging.NewNop(),
		otpResendInterval: defaultOTPResendInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	limit := rate.Inf
	if o.otpResendInterval > 0 {
		limit = rate.Every(o.otpResendInterval)
	}

	t := newAuthTransport(o.base, tokens, o.log, o.metrics)
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: o.timeout, Transport: t},
		transport:  t,
		log:        o.log,
		otpLimiter: rate.NewLimiter(limit, 1),
	}
}

var _ Client = (*HTTPClient)(nil)

// OnUnauthorized registers fn to run after a 401 purged the stored session.
func (c *HTTPClient) OnUnauthorized(fn func(ctx context.Context)) {
	c.transport.subscribe(fn)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		httpErr := &HTTPError{Status: resp.StatusCode, Body: b}
		c.log.Debug(ctx, "backend returned error", "method", method, "path", path, "status", resp.StatusCode)
		return httpErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, method, path, err)
	}
	return nil
}

func setID(q url.Values, key string, id int64) {
	if id != 0 {
		q.Set(key, fmt.Sprint(id))
	}
}
