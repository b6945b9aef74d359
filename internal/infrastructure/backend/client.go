// Package backend is the console's HTTP client for the remote inventory
// REST API. Every data-bearing operation in the console is a thin call
// through this package; nothing is cached or persisted here.
package backend

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

	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/api/metrics"
)

// APIError is a business error reported by the backend (any non-2xx
// response). Message carries the backend's own message when one was present,
// otherwise a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client issues requests against the backend API root.
type Client struct {
	http    *http.Client
	baseURL string
	log     zerolog.Logger
}

// New returns a Client for the given API root (including the /api prefix).
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{base: http.DefaultTransport},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

type tokenKey struct{}

// WithToken returns a context carrying the session's bearer token. The
// transport attaches it to every request made under that context; requests
// without a token proceed unauthenticated.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// bearerTransport injects the Authorization header. Header injection is its
// only side effect: no retries, no token refresh, no 401 interception.
type bearerTransport struct {
	base http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tok := tokenFrom(req.Context()); tok != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return t.base.RoundTrip(req)
}

// Ping reports whether the backend answers HTTP at all. Any response,
// including an error status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call performs one request and returns the raw response body. Non-2xx
// responses become *APIError; transport failures are wrapped as-is.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "transport").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "transport").Inc()
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode >= 400 {
		metrics.BackendRequestsTotal.WithLabelValues(op, "api_error").Inc()
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "request failed"}
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
		}
		c.log.Debug().Str("op", op).Int("status", resp.StatusCode).Str("message", apiErr.Message).Msg("backend error")
		return nil, apiErr
	}

	metrics.BackendRequestsTotal.WithLabelValues(op, "ok").Inc()
	return raw, nil
}

// decode unmarshals a response body into out. Enveloped bodies are unwrapped
// first; bare bodies decode directly, so both response shapes are accepted.
func decode(raw []byte, out any) error {
	if out == nil || len(raw) == 0 {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(raw, out)
}
