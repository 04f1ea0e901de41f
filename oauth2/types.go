package oauth2

// ResponseType represents the OAuth 2.0 response type.
// Determines what is returned from the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType indicates the authorization code flow.
	// Returns an authorization code that must be exchanged for tokens at the token endpoint.
	// Example: /restapi/oauth/authorize?response_type=code&client_id=...
	CodeResponseType ResponseType = "code"
)

// GrantType represents the OAuth 2.0 grant type sent to the token endpoint.
// Determines what credentials are required to obtain tokens.
type GrantType string

const (
	// PasswordGrantType exchanges resource-owner credentials for tokens.
	// Wire fields: username, password, extension, access_token_ttl, refresh_token_ttl
	PasswordGrantType GrantType = "password"

	// RefreshTokenGrantType exchanges a refresh token for a new token set.
	// Wire fields: refresh_token, access_token_ttl, refresh_token_ttl
	RefreshTokenGrantType GrantType = "refresh_token"

	// AuthorizationCodeGrantType exchanges an authorization code for tokens.
	// Wire fields: code, redirect_uri
	AuthorizationCodeGrantType GrantType = "authorization_code"
)
