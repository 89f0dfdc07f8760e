// internal/api/http.go
//
// HTTP implementation of Client against the yolked server's JSON API. The
// bearer token persists in the state dir between runs so a cold start can
// re-resolve an existing session.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultTimeout = 15 * time.Second

// HTTPClient talks JSON to the yolked server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  *TokenStore

	mu        sync.Mutex
	token     string
	listeners []func(AuthEvent)
}

// NewHTTPClient builds a client for the given server base URL. The token
// store may hold a session from a previous run; a missing store file just
// means signed out.
func NewHTTPClient(baseURL string, tokens *TokenStore) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
	}
	if tokens != nil {
		if tok, err := tokens.Load(); err == nil {
			c.token = tok
		}
	}
	return c
}

// OnAuthChange registers a listener for auth transitions. Listeners fire
// synchronously after the transition is committed client-side.
func (c *HTTPClient) OnAuthChange(fn func(AuthEvent)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

func (c *HTTPClient) emit(event AuthEvent) {
	c.mu.Lock()
	listeners := make([]func(AuthEvent), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(event)
	}
}

func (c *HTTPClient) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	if c.tokens != nil {
		if token == "" {
			_ = c.tokens.Clear()
		} else {
			_ = c.tokens.Save(token)
		}
	}
}

func (c *HTTPClient) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

type credentialsRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Meta     *SignUpMeta `json:"meta,omitempty"`
}

type sessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignUp registers a new account and opens a session.
func (c *HTTPClient) SignUp(ctx context.Context, email, password string, meta SignUpMeta) (*Session, error) {
	var resp sessionResponse
	req := credentialsRequest{Email: email, Password: password, Meta: &meta}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp, false); err != nil {
		return nil, err
	}
	c.setToken(resp.Token)
	c.emit(EventSignedUp)
	return &Session{Token: resp.Token, User: resp.User}, nil
}

// SignInWithPassword opens a session for an existing account.
func (c *HTTPClient) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	var resp sessionResponse
	req := credentialsRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp, false); err != nil {
		return nil, err
	}
	c.setToken(resp.Token)
	c.emit(EventSignedIn)
	return &Session{Token: resp.Token, User: resp.User}, nil
}

// SignInWithOAuth asks the server for the provider hand-off URL. The user
// finishes the dance in a browser; this client only surfaces the URL.
func (c *HTTPClient) SignInWithOAuth(ctx context.Context, provider string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	path := "/api/auth/oauth/" + provider
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, false); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// CurrentUser returns the session's user, or (nil, nil) when signed out.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*User, error) {
	if c.currentToken() == "" {
		return nil, nil
	}
	var resp struct {
		User User `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp, true)
	if errors.Is(err, ErrUnauthorized) {
		// Stale token from a previous run; treat as signed out.
		c.setToken("")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Profile fetches the session user's profile record.
func (c *HTTPClient) Profile(ctx context.Context) (*Profile, error) {
	if c.currentToken() == "" {
		return nil, ErrNoSession
	}
	var resp struct {
		Profile *Profile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/profile", nil, &resp, true); err != nil {
		return nil, err
	}
	if resp.Profile == nil {
		return nil, ErrProfileNotFound
	}
	return resp.Profile, nil
}

// UpdateProfile writes the collected onboarding fields. The server sets
// onboarding_completed together with the fields in this one request.
func (c *HTTPClient) UpdateProfile(ctx context.Context, fields ProfileFields) (*Profile, error) {
	if c.currentToken() == "" {
		return nil, ErrNoSession
	}
	var resp struct {
		Profile *Profile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/v1/profile/onboarding", fields, &resp, true); err != nil {
		return nil, err
	}
	if resp.Profile == nil {
		return nil, ErrProfileNotFound
	}
	return resp.Profile, nil
}

// SignOut ends the session. The local token is dropped even if the server
// call fails; there is nothing useful to do with it afterwards.
func (c *HTTPClient) SignOut(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, true)
	c.setToken("")
	c.emit(EventSignedOut)
	if errors.Is(err, ErrUnauthorized) {
		return nil
	}
	return err
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, withAuth bool) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth {
		req.Header.Set("Authorization", "Bearer "+c.currentToken())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized {
			return ErrUnauthorized
		}
		if resp.StatusCode == http.StatusNotFound {
			return ErrProfileNotFound
		}
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
