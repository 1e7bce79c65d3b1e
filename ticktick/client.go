// Package ticktick is a client for the TickTick Open API. A Client carries
// the bearer credential produced by the authflow package and exposes the
// project and task endpoints.
package ticktick

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jrsteele09/go-ticktick/oauthmodel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the Open API base used when none is configured.
const DefaultBaseURL = "https://ticktick.com/open/v1"

const (
	defaultAPITimeout = 30 * time.Second
	maxResponseBytes  = 4 << 20
)

var InvalidTokenErr = errors.New("a non-empty access token is required")

// APIError reports a non-2xx response from the Open API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("ticktick api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("ticktick api: status %d: %s", e.StatusCode, e.Body)
}

// Client calls the TickTick Open API on behalf of one authorized user.
// Methods are safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option defines a function type to modify a Client during New.
type Option func(*Client)

// WithBaseURL overrides the Open API base URL (primarily for testing).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient substitutes the underlying HTTP client entirely, including
// its authorization behaviour.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client authenticating with the given access token. The token
// is attached as a bearer credential through an oauth2 token source.
func New(token *oauthmodel.AccessToken, options ...Option) (*Client, error) {
	if token == nil || token.Token == "" {
		return nil, errors.Wrap(InvalidTokenErr, "[New]")
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(token.OAuth2Token()))
		client.httpClient.Timeout = defaultAPITimeout
	}
	return client, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do issues one request. body is JSON-encoded when non-nil; the response is
// decoded into out when out is non-nil and the payload is non-empty.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] json.Marshal")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "[Client.do] http.NewRequestWithContext")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] %s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrapf(err, "[Client.do] reading %s %s response", method, path)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("open api call")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.Wrapf(err, "[Client.do] decoding %s %s response", method, path)
		}
	}
	return nil
}
