package oauthmodel

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
// Determines what credentials are required to obtain tokens.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Used in: Standard Authorization Code Flow
	// Token request includes: code, client_id, client_secret, redirect_uri
	// Returns: access_token (and refresh_token where the provider issues one)
	AuthorizationCodeGrant GrantType = "authorization_code"

	// RefreshTokenGrant exchanges a refresh token for new tokens.
	// Used in: Token refresh flow (get a new access token without re-authorizing)
	// Token request includes: refresh_token, client_id, client_secret
	// Note: TickTick does not currently issue refresh tokens; the constant
	// exists so callers holding one from another deployment can name the grant.
	RefreshTokenGrant GrantType = "refresh_token"
)
