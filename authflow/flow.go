// Package authflow implements the client side of the OAuth2 Authorization
// Code grant against TickTick. A Flow is a one-shot object: BeginAuth issues
// the authorization URL together with a fresh CSRF state nonce, and FinishAuth
// validates the callback state and exchanges the authorization code for an
// access token through a TokenRequester.
package authflow

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-ticktick/internal/utils"
	"github.com/jrsteele09/go-ticktick/oauthmodel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// Endpoint holds TickTick's OAuth2 authorization and token endpoints.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://ticktick.com/oauth/authorize",
	TokenURL: "https://ticktick.com/oauth/token",
}

// DefaultScopes are the scopes requested when none are configured.
var DefaultScopes = []string{"tasks:read", "tasks:write"}

const stateEntropyBytes = 32

// Flow holds the transient state of one authorization attempt. Each Flow is an
// independent single-owner value: FinishAuth may be called at most once, and a
// Flow instance is not safe for concurrent use from multiple goroutines.
type Flow struct {
	id          string
	clientID    string
	redirectURI string
	state       string
	scopes      []string
	endpoint    oauth2.Endpoint
	authURL     string
	consumed    bool
	requester   TokenRequester
	logger      zerolog.Logger
	nowTime     func() time.Time
}

// FlowOption defines a function type to modify a Flow during BeginAuth.
type FlowOption func(*Flow)

// WithScopes overrides the scopes requested in the authorization URL.
func WithScopes(scopes ...string) FlowOption {
	return func(f *Flow) {
		f.scopes = scopes
	}
}

// WithEndpoint overrides the provider endpoints (primarily for testing).
func WithEndpoint(endpoint oauth2.Endpoint) FlowOption {
	return func(f *Flow) {
		f.endpoint = endpoint
	}
}

// WithTokenRequester substitutes the transport used for the token exchange.
func WithTokenRequester(requester TokenRequester) FlowOption {
	return func(f *Flow) {
		f.requester = requester
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger zerolog.Logger) FlowOption {
	return func(f *Flow) {
		f.logger = logger
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) FlowOption {
	return func(f *Flow) {
		f.nowTime = nowFunc
	}
}

// BeginAuth starts an authorization attempt. It validates the inputs,
// generates a fresh state nonce and constructs the authorization URL for the
// caller to present to the user. No network call is made.
func BeginAuth(clientID, redirectURI string, options ...FlowOption) (*Flow, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, errors.Wrap(InvalidInputErr, "[BeginAuth] client id is required")
	}
	if strings.TrimSpace(redirectURI) == "" {
		return nil, errors.Wrap(InvalidInputErr, "[BeginAuth] redirect uri is required")
	}
	parsed, err := url.Parse(redirectURI)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Wrap(InvalidInputErr, "[BeginAuth] redirect uri must be an absolute uri")
	}

	state, err := generateState()
	if err != nil {
		return nil, errors.Wrap(err, "[BeginAuth] generateState")
	}

	flow := &Flow{
		id:          uuid.New().String(),
		clientID:    clientID,
		redirectURI: redirectURI,
		state:       state,
		scopes:      DefaultScopes,
		endpoint:    Endpoint,
		logger:      zerolog.Nop(),
		nowTime:     time.Now,
	}
	for _, opt := range options {
		opt(flow)
	}
	if flow.requester == nil {
		flow.requester = NewHTTPTokenRequester(flow.endpoint.TokenURL, WithRequesterLogger(flow.logger))
	}

	oauthConfig := oauth2.Config{
		ClientID:    flow.clientID,
		RedirectURL: flow.redirectURI,
		Scopes:      flow.scopes,
		Endpoint:    flow.endpoint,
	}
	flow.authURL = oauthConfig.AuthCodeURL(flow.state)

	flow.logger.Debug().
		Str("flow_id", flow.id).
		Str("client_id", flow.clientID).
		Str("redirect_uri", flow.redirectURI).
		Msg("authorization flow started")

	return flow, nil
}

// URL returns the fully-formed authorization URL for the caller to present,
// e.g. by opening it in a browser.
func (f *Flow) URL() string {
	return f.authURL
}

// State returns the CSRF nonce issued for this attempt. Callers running their
// own redirect listener compare it against the callback's state parameter or
// pass the callback value to FinishAuth, which performs the comparison itself.
func (f *Flow) State() string {
	return f.state
}

// FinishAuth completes the authorization attempt: it validates the returned
// state against the issued nonce and exchanges the authorization code for an
// access token at the token endpoint.
//
// The flow is consumed by this call regardless of outcome; a second call
// fails with FlowAlreadyConsumedErr. A state mismatch fails with
// StateMismatchErr before any network activity. Exchange failures, including
// timeouts, surface as *TokenExchangeError.
func (f *Flow) FinishAuth(ctx context.Context, clientSecret, code, returnedState string) (*oauthmodel.AccessToken, error) {
	if f.consumed {
		return nil, errors.Wrap(FlowAlreadyConsumedErr, "[FinishAuth] flow is single-use")
	}
	f.consumed = true

	if strings.TrimSpace(clientSecret) == "" {
		return nil, errors.Wrap(InvalidInputErr, "[FinishAuth] client secret is required")
	}
	if strings.TrimSpace(code) == "" {
		return nil, errors.Wrap(InvalidInputErr, "[FinishAuth] authorization code is required")
	}

	if subtle.ConstantTimeCompare([]byte(returnedState), []byte(f.state)) != 1 {
		f.logger.Warn().
			Str("flow_id", f.id).
			Msg("callback state does not match issued state")
		return nil, errors.Wrap(StateMismatchErr, "[FinishAuth] state validation")
	}

	response, err := f.requester.SendTokenRequest(ctx, oauthmodel.TokenRequest{
		ClientID:     f.clientID,
		ClientSecret: clientSecret,
		Code:         code,
		RedirectURI:  f.redirectURI,
		GrantType:    oauthmodel.AuthorizationCodeGrant,
		Scope:        strings.Join(f.scopes, " "),
	})
	if err != nil {
		var exchangeErr *TokenExchangeError
		if errors.As(err, &exchangeErr) {
			return nil, err
		}
		return nil, &TokenExchangeError{Err: err}
	}
	if response == nil || utils.Value(response.AccessToken) == "" {
		return nil, &TokenExchangeError{Description: "token endpoint returned no access token"}
	}

	token := &oauthmodel.AccessToken{
		Token:        *response.AccessToken,
		TokenType:    response.TokenType,
		Scope:        response.Scope,
		RefreshToken: response.RefreshToken,
	}
	if response.ExpiresIn > 0 {
		token.Expiry = f.nowTime().Add(time.Duration(response.ExpiresIn) * time.Second)
	}

	f.logger.Debug().
		Str("flow_id", f.id).
		Time("token_expiry", token.Expiry).
		Msg("authorization flow completed")

	return token, nil
}

func generateState() (string, error) {
	buf := make([]byte, stateEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generateState rand.Read")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
