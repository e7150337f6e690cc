// Package apiclient is the typed client for the tutoring platform backend.
// Every call goes through one executor that attaches the right bearer token
// for its trust level and maps all ordinary failures onto *Error values, so
// callers branch on the numeric status instead of catching anything.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shiksha-labs/tutorbot/internal/credstore"
	"github.com/shiksha-labs/tutorbot/internal/metrics"
)

// Trust selects which stored token (if any) a request is issued under.
// Exactly one token is attached per request; user and admin credentials are
// never combined.
type Trust int

const (
	TrustNone Trust = iota
	TrustUser
	TrustAdmin
)

// Error is the uniform failure outcome. Status 0 means the transport failed
// and no response was obtained; 401 with one of the auth messages below may
// be synthesized client-side without any network activity.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsAuthRequired reports whether err is an authentication failure, either
// synthesized locally or returned by the server.
func IsAuthRequired(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// StatusOf returns the numeric status carried by err, or -1 when err is not
// an API error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}

// Client talks to one backend origin on behalf of one credential namespace.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *credstore.Session

	Auth     *AuthAPI
	Academic *AcademicAPI
	User     *UserAPI
	Tutor    *TutorAPI
	Admin    *AdminAPI
}

// New builds a client against baseURL. The session supplies tokens at call
// time, so login/logout elsewhere is picked up immediately.
func New(baseURL string, timeout time.Duration, session *credstore.Session) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		session:    session,
	}
	c.Auth = &AuthAPI{client: c}
	c.Academic = &AcademicAPI{client: c}
	c.User = &UserAPI{client: c}
	c.Tutor = &TutorAPI{client: c}
	c.Admin = &AdminAPI{client: c}
	return c
}

// Session exposes the credential facade the client was built with.
func (c *Client) Session() *credstore.Session {
	return c.session
}

// do performs one HTTP call. It never retries and never panics for ordinary
// failures; the returned error is always a *Error for anything short of a
// programming mistake.
func (c *Client) do(ctx context.Context, method, path, resource string, body any, trust Trust, out any) error {
	var token string
	switch trust {
	case TrustUser:
		tok, err := c.session.Token(ctx)
		if err != nil || tok == "" {
			metrics.APIRequests.WithLabelValues(resource, "denied").Inc()
			return &Error{Status: http.StatusUnauthorized, Message: "Authentication required"}
		}
		token = tok
	case TrustAdmin:
		tok, err := c.session.AdminToken(ctx)
		if err != nil || tok == "" {
			metrics.APIRequests.WithLabelValues(resource, "denied").Inc()
			return &Error{Status: http.StatusUnauthorized, Message: "Admin authentication required"}
		}
		token = tok
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Status: 0, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Status: 0, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIRequests.WithLabelValues(resource, "0").Inc()
		return &Error{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	metrics.APIRequests.WithLabelValues(resource, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		raw = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		var serverErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &serverErr) == nil && serverErr.Message != "" {
			msg = serverErr.Message
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		// An unparseable 2xx body degrades to a zero payload instead of
		// an error; the status contract already succeeded.
		_ = json.Unmarshal(raw, out)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, resource string, trust Trust, out any) error {
	return c.do(ctx, http.MethodGet, path, resource, nil, trust, out)
}

func (c *Client) post(ctx context.Context, path, resource string, body any, trust Trust, out any) error {
	return c.do(ctx, http.MethodPost, path, resource, body, trust, out)
}

func (c *Client) put(ctx context.Context, path, resource string, body any, trust Trust, out any) error {
	return c.do(ctx, http.MethodPut, path, resource, body, trust, out)
}
