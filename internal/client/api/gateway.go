package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pagebound/bookclub/internal/logging"
)

// signInPath identifies the one request whose 401 must not clear the
// session: there is no session yet to clear, and forcing a redirect would
// loop on the login screen.
const signInPath = "/users/sign_in"

// Session is the slice of the session store the gateway needs: the token to
// attach on the way out, and Clear for the 401 policy.
type Session interface {
	Token() string
	Clear(ctx context.Context) error
}

// Gateway is the configured outbound channel shared by all services.
type Gateway struct {
	baseURL   string
	http      *http.Client
	session   Session
	log       logging.Logger
	onExpired func()
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the underlying HTTP client (tests, custom
// transports).
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.http = c }
}

// WithExpiryHandler installs the hook invoked after a non-sign-in 401 has
// cleared the session; the screen layer uses it to fall back to the login
// entry point.
func WithExpiryHandler(fn func()) Option {
	return func(g *Gateway) { g.onExpired = fn }
}

// New builds a Gateway talking to baseURL with the given request timeout.
func New(baseURL string, timeout time.Duration, session Session, log logging.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
		log:     log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodGet, path, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, body, out)
}

func (g *Gateway) Patch(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPatch, path, body, out)
}

func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodDelete, path, nil, out)
}

func (g *Gateway) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	// Absence of a token is not an error here: the unauthenticated
	// endpoints (sign-in, sign-up, password reset) must still go through.
	if token := g.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding response for %s %s: %w", method, path, err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return g.handleUnauthorized(ctx, path)

	case resp.StatusCode == http.StatusUnprocessableEntity:
		ve := &ValidationError{}
		if err := json.Unmarshal(raw, ve); err != nil || len(ve.Issues) == 0 {
			return fmt.Errorf("%s %s: validation failed", method, path)
		}
		return ve

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)

	default:
		g.log.Warn(ctx, "unexpected response", "method", method, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s %s returned %d", ErrUnavailable, method, path, resp.StatusCode)
	}
}

// handleUnauthorized implements the gateway's central control-flow branch.
// The decision is keyed off the request target: a failed sign-in is a
// normal "invalid credentials" outcome, while a 401 anywhere else means the
// session is dead and must be torn down.
func (g *Gateway) handleUnauthorized(ctx context.Context, path string) error {
	if isSignIn(path) {
		return ErrInvalidCredentials
	}
	if err := g.session.Clear(ctx); err != nil {
		g.log.Error(ctx, "clearing session after 401", "error", err)
	}
	if g.onExpired != nil {
		g.onExpired()
	}
	return ErrSessionExpired
}

func isSignIn(path string) bool {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return strings.HasSuffix(path, signInPath)
}
