package authflow_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/jrsteele09/go-ticktick/authflow"
	"github.com/jrsteele09/go-ticktick/authflow/requesterfake"
	"github.com/jrsteele09/go-ticktick/internal/utils"
	"github.com/jrsteele09/go-ticktick/oauthmodel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	testClientID     = "abc123"
	testClientSecret = "test-secret-1"
	testRedirectURI  = "http://localhost:8080/callback"
	testAuthCode     = "XYZ"
	testAccessToken  = "tok_1"
)

// testFixture holds a flow wired to a fake token requester.
type testFixture struct {
	flow      *authflow.Flow
	requester *requesterfake.FakeTokenRequester
	now       time.Time
}

func setupTestFixture(t *testing.T, options ...authflow.FlowOption) *testFixture {
	t.Helper()

	requester := requesterfake.NewFakeTokenRequester()
	requester.Response = &oauthmodel.TokenResponse{
		AccessToken: utils.Ptr(testAccessToken),
		TokenType:   "bearer",
		ExpiresIn:   3600,
		Scope:       "tasks:read tasks:write",
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	options = append([]authflow.FlowOption{
		authflow.WithTokenRequester(requester),
		authflow.WithNowTime(func() time.Time { return now }),
	}, options...)

	flow, err := authflow.BeginAuth(testClientID, testRedirectURI, options...)
	require.NoError(t, err)

	return &testFixture{flow: flow, requester: requester, now: now}
}

func TestBeginAuthBuildsAuthorizationURL(t *testing.T) {
	f := setupTestFixture(t)

	parsed, err := url.Parse(f.flow.URL())
	require.NoError(t, err)

	query := parsed.Query()
	require.Equal(t, "code", query.Get("response_type"))
	require.Equal(t, testClientID, query.Get("client_id"))
	require.Equal(t, testRedirectURI, query.Get("redirect_uri"))
	require.Equal(t, "tasks:read tasks:write", query.Get("scope"))
	require.Equal(t, f.flow.State(), query.Get("state"))
	require.GreaterOrEqual(t, len(f.flow.State()), 32)
	require.Equal(t, "ticktick.com", parsed.Host)
	require.Equal(t, "/oauth/authorize", parsed.Path)
}

func TestBeginAuthCustomScopes(t *testing.T) {
	f := setupTestFixture(t, authflow.WithScopes("tasks:read"))

	parsed, err := url.Parse(f.flow.URL())
	require.NoError(t, err)
	require.Equal(t, "tasks:read", parsed.Query().Get("scope"))
}

func TestBeginAuthInvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		clientID    string
		redirectURI string
	}{
		{name: "empty client id", clientID: "", redirectURI: testRedirectURI},
		{name: "blank client id", clientID: "   ", redirectURI: testRedirectURI},
		{name: "empty redirect uri", clientID: testClientID, redirectURI: ""},
		{name: "relative redirect uri", clientID: testClientID, redirectURI: "/callback"},
		{name: "missing scheme", clientID: testClientID, redirectURI: "localhost:8080"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flow, err := authflow.BeginAuth(tc.clientID, tc.redirectURI)
			require.ErrorIs(t, err, authflow.InvalidInputErr)
			require.Nil(t, flow)
		})
	}
}

func TestBeginAuthStateUniqueness(t *testing.T) {
	states := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		flow, err := authflow.BeginAuth(testClientID, testRedirectURI)
		require.NoError(t, err)
		_, seen := states[flow.State()]
		require.False(t, seen)
		states[flow.State()] = struct{}{}
	}
}

func TestFinishAuthReturnsAccessToken(t *testing.T) {
	f := setupTestFixture(t)

	token, err := f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, f.flow.State())
	require.NoError(t, err)
	require.Equal(t, testAccessToken, token.Token)
	require.Equal(t, "bearer", token.TokenType)
	require.Equal(t, "tasks:read tasks:write", token.Scope)
	require.Equal(t, f.now.Add(3600*time.Second), token.Expiry)
	require.Nil(t, token.RefreshToken)

	requests := f.requester.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, testClientID, requests[0].ClientID)
	require.Equal(t, testClientSecret, requests[0].ClientSecret)
	require.Equal(t, testAuthCode, requests[0].Code)
	require.Equal(t, testRedirectURI, requests[0].RedirectURI)
	require.Equal(t, oauthmodel.AuthorizationCodeGrant, requests[0].GrantType)
	require.Equal(t, "tasks:read tasks:write", requests[0].Scope)
}

func TestFinishAuthStateMismatch(t *testing.T) {
	f := setupTestFixture(t)

	token, err := f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, "attacker-state")
	require.ErrorIs(t, err, authflow.StateMismatchErr)
	require.Nil(t, token)
	require.Empty(t, f.requester.Requests())
}

func TestFinishAuthFlowIsSingleUse(t *testing.T) {
	t.Run("after success", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, f.flow.State())
		require.NoError(t, err)

		_, err = f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, f.flow.State())
		require.ErrorIs(t, err, authflow.FlowAlreadyConsumedErr)
		require.Len(t, f.requester.Requests(), 1)
	})

	t.Run("after state mismatch", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, "wrong")
		require.ErrorIs(t, err, authflow.StateMismatchErr)

		_, err = f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, f.flow.State())
		require.ErrorIs(t, err, authflow.FlowAlreadyConsumedErr)
		require.Empty(t, f.requester.Requests())
	})

	t.Run("after exchange failure", func(t *testing.T) {
		f := setupTestFixture(t)
		f.requester.Err = &authflow.TokenExchangeError{StatusCode: 500}

		_, err := f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, f.flow.State())
		var exchangeErr *authflow.TokenExchangeError
		require.ErrorAs(t, err, &exchangeErr)

		_, err = f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, f.flow.State())
		require.ErrorIs(t, err, authflow.FlowAlreadyConsumedErr)
	})
}

func TestFinishAuthEmptyInputs(t *testing.T) {
	t.Run("empty client secret", func(t *testing.T) {
		f := setupTestFixture(t)
		_, err := f.flow.FinishAuth(context.Background(), "", testAuthCode, f.flow.State())
		require.ErrorIs(t, err, authflow.InvalidInputErr)
		require.Empty(t, f.requester.Requests())
	})

	t.Run("empty code", func(t *testing.T) {
		f := setupTestFixture(t)
		_, err := f.flow.FinishAuth(context.Background(), testClientSecret, "", f.flow.State())
		require.ErrorIs(t, err, authflow.InvalidInputErr)
		require.Empty(t, f.requester.Requests())
	})
}

func TestFinishAuthExchangeFailure(t *testing.T) {
	f := setupTestFixture(t)
	f.requester.Err = &authflow.TokenExchangeError{
		StatusCode:  400,
		Code:        "invalid_grant",
		Description: "authorization code expired",
	}

	token, err := f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, f.flow.State())
	require.Nil(t, token)

	var exchangeErr *authflow.TokenExchangeError
	require.ErrorAs(t, err, &exchangeErr)
	require.Equal(t, 400, exchangeErr.StatusCode)
	require.Equal(t, "invalid_grant", exchangeErr.Code)
	require.Equal(t, "authorization code expired", exchangeErr.Description)
}

func TestFinishAuthWrapsTransportError(t *testing.T) {
	f := setupTestFixture(t)
	transportErr := errors.New("dial tcp: connection refused")
	f.requester.Err = transportErr

	_, err := f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, f.flow.State())

	var exchangeErr *authflow.TokenExchangeError
	require.ErrorAs(t, err, &exchangeErr)
	require.ErrorIs(t, exchangeErr, transportErr)
}

func TestFinishAuthMissingAccessToken(t *testing.T) {
	f := setupTestFixture(t)
	f.requester.Response = &oauthmodel.TokenResponse{TokenType: "bearer"}

	_, err := f.flow.FinishAuth(context.Background(), testClientSecret, testAuthCode, f.flow.State())

	var exchangeErr *authflow.TokenExchangeError
	require.ErrorAs(t, err, &exchangeErr)
}
