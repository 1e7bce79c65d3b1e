package oauthmodel

import "net/url"

// TokenRequest holds the parameters for an OAuth2 token-endpoint request.
// This represents the form body POSTed to the provider's /oauth/token endpoint
// when exchanging an authorization code for an access token.
type TokenRequest struct {
	// ClientID identifies the registered application making the request.
	// Required: Yes
	// Example: "abc123"
	ClientID string

	// ClientSecret is the secret credential for the registered application.
	// Required: Yes (TickTick only issues confidential clients)
	// Security: Never log or expose this value
	ClientSecret string

	// Code is the authorization code received via the redirect callback.
	// Required: Yes
	// Usage: Exchanged once for a token, then becomes invalid
	Code string

	// RedirectURI must exactly match the URI used in the authorization request.
	// Required: Yes
	// Example: "http://localhost:8080/callback"
	RedirectURI string

	// GrantType is the OAuth2 grant being exercised.
	// Required: Yes
	// Example: "authorization_code"
	GrantType GrantType

	// Scope is the space-separated scope list originally requested.
	// Required: No (TickTick echoes it back on the issued token)
	// Example: "tasks:read tasks:write"
	Scope string
}

// Values encodes the request as the x-www-form-urlencoded body expected by
// the token endpoint.
func (tr TokenRequest) Values() url.Values {
	values := url.Values{
		"client_id":     {tr.ClientID},
		"client_secret": {tr.ClientSecret},
		"code":          {tr.Code},
		"redirect_uri":  {tr.RedirectURI},
		"grant_type":    {string(tr.GrantType)},
	}
	if tr.Scope != "" {
		values.Set("scope", tr.Scope)
	}
	return values
}
