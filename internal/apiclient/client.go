// Package apiclient talks to the platform's REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nfrund/sevahub/internal/domain"
)

const (
	mePath    = "/api/auth/me"
	loginPath = "/api/auth/login"

	// maxBodyBytes bounds how much of a response body is decoded.
	maxBodyBytes = 1 << 20
)

var (
	// ErrTransport marks failures where no HTTP response was received.
	ErrTransport = errors.New("api unreachable")

	// ErrInvalidCredentials is returned by Login for rejected email/password pairs.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// StatusError is returned when the API answers with a non-success status.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Path, e.Code)
}

// Is lets callers match a StatusError against the domain taxonomy: every
// status failure is a fetch failure, and 401/403 also mean the token is no
// longer accepted.
func (e *StatusError) Is(target error) bool {
	switch target {
	case domain.ErrFetchFailed:
		return true
	case domain.ErrUnauthenticated:
		return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
	default:
		return false
	}
}

// IsTransient reports whether err came from the network rather than from an
// answer by the API.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransport)
}

// Client is a small JSON client bound to one base origin.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for baseURL. A zero timeout means no timeout.
// Trailing slashes on baseURL are dropped.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient creates a Client that uses hc for every request.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Me fetches the principal that owns token.
func (c *Client) Me(ctx context.Context, token string) (*domain.Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+mePath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrFetchFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	var principal *domain.Principal
	if err := c.do(req, mePath, &principal); err != nil {
		return nil, err
	}
	// A null body or one without firstName is not a profile.
	if principal == nil || principal.FirstName == "" {
		return nil, fmt.Errorf("%w: decode %s: response has no firstName", domain.ErrFetchFailed, mePath)
	}
	return principal, nil
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries what the API hands back after a successful sign-in.
type LoginResult struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

// Login exchanges credentials for a bearer token and role.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body, err := json.Marshal(loginPayload{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var result LoginResult
	if err := c.do(req, loginPath, &result); err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.Code == http.StatusBadRequest || se.Code == http.StatusUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if result.Token == "" {
		return nil, fmt.Errorf("%w: login response has no token", domain.ErrFetchFailed)
	}
	return &result, nil
}

// do sends req and decodes a JSON success body into out.
func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", domain.ErrFetchFailed, ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &StatusError{Path: path, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", domain.ErrFetchFailed, path, err)
	}
	return nil
}
