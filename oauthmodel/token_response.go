package oauthmodel

// TokenResponse represents the response from an OAuth2 token request.
// This is the standard token endpoint response format defined in RFC 6749,
// as returned by TickTick's /oauth/token endpoint.
type TokenResponse struct {
	// AccessToken is the bearer credential used to access the Open API.
	// Example: "e4b2f1c0-..."
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken *string `json:"access_token,omitempty"`

	// TokenType indicates how to use the access token (TickTick returns "bearer").
	// Standard: OAuth2 spec requires this field
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Example: 15552000 (180 days)
	// Usage: Client should re-authorize before expiration
	ExpiresIn int `json:"expires_in,omitempty"`

	// RefreshToken is an opaque token used to obtain new access tokens.
	// Only present when the provider issues one; TickTick currently does not.
	RefreshToken *string `json:"refresh_token,omitempty"`

	// Scope indicates the access token's granted permissions.
	// Example: "tasks:read tasks:write"
	// Note: May be less than requested if some scopes were denied
	Scope string `json:"scope,omitempty"`
}

// ErrorResponse represents the error payload a token endpoint returns
// alongside a non-2xx status, per RFC 6749 section 5.2.
type ErrorResponse struct {
	// Code is the machine-readable error code.
	// Example: "invalid_grant"
	Code string `json:"error,omitempty"`

	// Description is the optional human-readable detail.
	// Example: "authorization code expired"
	Description string `json:"error_description,omitempty"`
}
