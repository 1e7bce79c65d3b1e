package authflow

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-ticktick/oauthmodel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// TokenRequester abstracts the single network call a Flow makes: POSTing a
// token request to the provider's token endpoint. Tests substitute a fake to
// run the flow without network access.
type TokenRequester interface {
	SendTokenRequest(ctx context.Context, request oauthmodel.TokenRequest) (*oauthmodel.TokenResponse, error)
}

const (
	defaultExchangeTimeout = 30 * time.Second
	maxResponseBytes       = 1 << 20
)

// HTTPTokenRequester is the default TokenRequester. It issues one form POST
// per call with a conservative timeout and performs no retries.
type HTTPTokenRequester struct {
	tokenURL   string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ TokenRequester = (*HTTPTokenRequester)(nil)

// RequesterOption defines a function type to modify an HTTPTokenRequester.
type RequesterOption func(*HTTPTokenRequester)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(client *http.Client) RequesterOption {
	return func(r *HTTPTokenRequester) {
		r.httpClient = client
	}
}

// WithRequesterLogger attaches a logger. The default discards everything.
func WithRequesterLogger(logger zerolog.Logger) RequesterOption {
	return func(r *HTTPTokenRequester) {
		r.logger = logger
	}
}

// NewHTTPTokenRequester creates a requester bound to the given token endpoint URL.
func NewHTTPTokenRequester(tokenURL string, options ...RequesterOption) *HTTPTokenRequester {
	requester := &HTTPTokenRequester{
		tokenURL:   tokenURL,
		httpClient: &http.Client{Timeout: defaultExchangeTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(requester)
	}
	return requester
}

// SendTokenRequest POSTs the token request and decodes the response. Non-2xx
// statuses and undecodable payloads are returned as *TokenExchangeError with
// the provider's error code and description when the body carried them.
// The client secret is sent in the form body only and is never logged.
func (r *HTTPTokenRequester) SendTokenRequest(ctx context.Context, request oauthmodel.TokenRequest) (*oauthmodel.TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.tokenURL, strings.NewReader(request.Values().Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "[SendTokenRequest] http.NewRequestWithContext")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &TokenExchangeError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TokenExchangeError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		exchangeErr := &TokenExchangeError{StatusCode: resp.StatusCode}
		var errResponse oauthmodel.ErrorResponse
		if jsonErr := json.Unmarshal(body, &errResponse); jsonErr == nil {
			exchangeErr.Code = errResponse.Code
			exchangeErr.Description = errResponse.Description
		}
		r.logger.Debug().
			Int("status", resp.StatusCode).
			Str("error", exchangeErr.Code).
			Msg("token exchange rejected")
		return nil, exchangeErr
	}

	var tokenResponse oauthmodel.TokenResponse
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return nil, &TokenExchangeError{
			StatusCode: resp.StatusCode,
			Err:        errors.Wrap(err, "malformed token response"),
		}
	}
	return &tokenResponse, nil
}
