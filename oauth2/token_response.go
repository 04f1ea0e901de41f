package oauth2

// TokenResponse represents the response from an OAuth2 token request.
// This is the standard OAuth2 token endpoint response format as defined in RFC 6749,
// extended with the refresh-token lifetime field this API reports alongside it.
// Returned from the /restapi/oauth/token endpoint for all grant types.
type TokenResponse struct {
	// AccessToken is the opaque token used to access protected resources.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	// Lifespan: Short-lived (typically 1 hour)
	AccessToken *string `json:"access_token,omitempty"`

	// TokenType indicates how to use the access token (always "Bearer" for this API).
	// Standard: OAuth2 spec requires this field
	// Usage: Tells client to use "Authorization: Bearer <token>" header
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Example: 3600 (for 1 hour)
	// Usage: Client computes the expiry instant as now + ExpiresIn
	ExpiresIn int `json:"expires_in,omitempty"`

	// RefreshToken is an opaque token used to obtain new access tokens.
	// Usage: Send to the token endpoint with grant_type=refresh_token
	// Security: Consumed on use - a successful refresh rotates it
	RefreshToken *string `json:"refresh_token,omitempty"`

	// RefreshTokenExpiresIn is the lifetime in seconds of the refresh token.
	// Example: 36000, or 604800 when the extended "remember" policy was requested
	// Usage: Client computes the refresh expiry instant as now + RefreshTokenExpiresIn
	RefreshTokenExpiresIn int `json:"refresh_token_expires_in,omitempty"`

	// Scope indicates the access token's granted permissions.
	// Example: "ReadAccounts ReadMessages"
	Scope string `json:"scope,omitempty"`

	// OwnerID is the account owner the token was issued for.
	OwnerID *string `json:"owner_id,omitempty"`

	// EndpointID identifies the endpoint the token set is bound to.
	EndpointID *string `json:"endpoint_id,omitempty"`
}
