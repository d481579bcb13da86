// Package client is a typed Go SDK for the bazaar HTTP API. It wraps the
// unified response envelope, attaches bearer credentials from a TokenSource
// and maps error responses onto *APIError values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrNotAuthenticated is returned before a request is issued when an endpoint
// requires a bearer token and the TokenSource has none.
var ErrNotAuthenticated = errors.New("client: not authenticated")

// TokenSource centralizes the bearer credential. Pages never read storage
// directly; they ask the source.
type TokenSource interface {
	// Token returns the current access token. ok is false when signed out.
	Token() (token string, ok bool)
	// Authenticated reports whether a token is currently held.
	Authenticated() bool
	// Logout drops the credential.
	Logout()
}

// MemoryTokenSource is a TokenSource backed by process memory.
type MemoryTokenSource struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenSource returns a source holding the given token. An empty
// token means signed out.
func NewMemoryTokenSource(token string) *MemoryTokenSource {
	return &MemoryTokenSource{token: token}
}

// SetToken replaces the held credential, e.g. after a login call.
func (s *MemoryTokenSource) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token implements TokenSource.
func (s *MemoryTokenSource) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.token != ""
}

// Authenticated implements TokenSource.
func (s *MemoryTokenSource) Authenticated() bool {
	_, ok := s.Token()

	return ok
}

// Logout implements TokenSource.
func (s *MemoryTokenSource) Logout() {
	s.SetToken("")
}

// APIError is a non-2xx response decoded from the server's envelope.
type APIError struct {
	Status  int    // HTTP status code
	Code    string // business error code, e.g. "BUSINESS_NOT_FOUND"
	Message string // user-friendly message
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}

	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client issues requests against one bazaar deployment.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport, e.g. to set a timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets the bearer credential capability.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     NewMemoryTokenSource(""),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// TokenSource exposes the credential capability, e.g. for logout buttons.
func (c *Client) TokenSource() TokenSource {
	return c.tokens
}

// envelope mirrors the server's unified response structure. Data stays raw
// until the caller's target type is known.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

// do issues one request and decodes the envelope's data into out. When authed
// is set and no token is held, the request is not issued at all.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any, authed bool) error {
	var token string
	if authed {
		var ok bool
		if token, ok = c.tokens.Token(); !ok {
			return ErrNotAuthenticated
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Not the expected envelope. Still surface a typed error on non-2xx.
		if resp.StatusCode >= 300 {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}

		return errors.Wrap(err, "failed to decode response")
	}

	if resp.StatusCode >= 300 || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	return decodeData(env.Data, out)
}

// decodeData fills out from the envelope's data field. A payload whose shape
// does not match a list target degrades to an empty slice instead of failing
// the whole page.
func decodeData(raw json.RawMessage, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Type != nil && typeErr.Type.Kind() == reflect.Slice {
			return nil
		}

		return errors.Wrap(err, "failed to decode response data")
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any, authed bool) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, authed)
}

func (c *Client) post(ctx context.Context, path string, body, out any, authed bool) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, authed)
}

func (c *Client) put(ctx context.Context, path string, body, out any, authed bool) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, authed)
}

func (c *Client) patch(ctx context.Context, path string, body, out any, authed bool) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out, authed)
}

func (c *Client) delete(ctx context.Context, path string, authed bool) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, authed)
}
