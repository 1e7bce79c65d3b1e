package oauthmodel

import (
	"time"

	"golang.org/x/oauth2"
)

// AccessToken is the bearer credential produced by a completed authorization
// flow. Any holder of the token can act as the authorizing user, so callers own
// storage and handling after the exchange; this package keeps no copy.
type AccessToken struct {
	// Token is the bearer value sent on Open API calls.
	Token string

	// TokenType is the provider-reported token type, normally "bearer".
	TokenType string

	// Scope is the space-separated list of granted scopes.
	Scope string

	// Expiry is the instant the token stops being valid, computed from the
	// provider's expires_in at exchange time. Zero when the provider gave no
	// lifetime.
	Expiry time.Time

	// RefreshToken is the refresh credential, when the provider issued one.
	RefreshToken *string
}

// Valid reports whether the token is non-empty and not known to have expired.
func (at AccessToken) Valid() bool {
	if at.Token == "" {
		return false
	}
	if at.Expiry.IsZero() {
		return true
	}
	return time.Now().Before(at.Expiry)
}

// OAuth2Token converts the token into the golang.org/x/oauth2 representation,
// usable with oauth2.NewClient and friends.
func (at AccessToken) OAuth2Token() *oauth2.Token {
	token := &oauth2.Token{
		AccessToken: at.Token,
		TokenType:   at.TokenType,
		Expiry:      at.Expiry,
	}
	if at.RefreshToken != nil {
		token.RefreshToken = *at.RefreshToken
	}
	return token
}
