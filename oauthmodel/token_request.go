package oauthmodel

import (
	"net/url"
	"strconv"

	"github.com/foxyfoxza/ringcentral-go/oauth2"
)

// Token lifetimes requested from the token endpoint, in seconds.
// The refresh-token lifetime depends on the "remember" policy chosen at login.
const (
	AccessTokenTTL          = 3600
	RefreshTokenTTL         = 36000
	RememberRefreshTokenTTL = 604800
)

// REST endpoints for the auth flows.
const (
	TokenEndpoint     = "/restapi/oauth/token"
	RevokeEndpoint    = "/restapi/oauth/revoke"
	AuthorizeEndpoint = "/restapi/oauth/authorize"
)

// RefreshTokenTTLFor returns the refresh-token lifetime to request for the
// given remember policy.
func RefreshTokenTTLFor(remember bool) int {
	if remember {
		return RememberRefreshTokenTTL
	}
	return RefreshTokenTTL
}

// TokenRequest holds parameters for an OAuth2 token request.
// This represents the form body sent to the token endpoint.
// Supports the password, refresh_token and authorization_code grant types.
type TokenRequest struct {
	// GrantType selects the flow and which of the fields below are sent.
	GrantType oauth2.GrantType

	// Username identifies the resource owner (password grant only).
	// Example: "+15551234567" or "john.doe@example.com"
	Username string

	// Extension narrows the login to a specific extension (password grant only).
	// Optional: omitted from the wire when empty
	Extension string

	// Password is the resource owner's credential (password grant only).
	// Security: Never log or expose this value
	Password string

	// RefreshToken is the credential for the refresh_token grant.
	RefreshToken string

	// Code is the authorization code received from the authorization endpoint.
	// Usage: Exchanged once for tokens, then becomes invalid
	Code string

	// RedirectURI must match the URI used in the authorization request
	// (authorization_code grant only).
	RedirectURI string

	// AccessTokenTTL is the requested access-token lifetime in seconds.
	AccessTokenTTL int

	// RefreshTokenTTL is the requested refresh-token lifetime in seconds.
	// Chosen from the remember policy, see RefreshTokenTTLFor.
	RefreshTokenTTL int
}

// PasswordGrant builds the token request for a username/password login.
func PasswordGrant(username, extension, password string, remember bool) TokenRequest {
	return TokenRequest{
		GrantType:       oauth2.PasswordGrantType,
		Username:        username,
		Extension:       extension,
		Password:        password,
		AccessTokenTTL:  AccessTokenTTL,
		RefreshTokenTTL: RefreshTokenTTLFor(remember),
	}
}

// RefreshGrant builds the token request that trades a refresh token for a
// new token set, reusing the remember policy recorded at login.
func RefreshGrant(refreshToken string, remember bool) TokenRequest {
	return TokenRequest{
		GrantType:       oauth2.RefreshTokenGrantType,
		RefreshToken:    refreshToken,
		AccessTokenTTL:  AccessTokenTTL,
		RefreshTokenTTL: RefreshTokenTTLFor(remember),
	}
}

// AuthorizationCodeGrant builds the token request for the code exchange step
// of the authorization-code flow.
func AuthorizationCodeGrant(code, redirectURI string) TokenRequest {
	return TokenRequest{
		GrantType:   oauth2.AuthorizationCodeGrantType,
		Code:        code,
		RedirectURI: redirectURI,
	}
}

// FormValues encodes the request into the form fields the token endpoint
// expects for the selected grant type.
func (r TokenRequest) FormValues() url.Values {
	values := url.Values{}
	values.Set("grant_type", string(r.GrantType))

	switch r.GrantType {
	case oauth2.PasswordGrantType:
		values.Set("username", r.Username)
		values.Set("password", r.Password)
		if r.Extension != "" {
			values.Set("extension", r.Extension)
		}
	case oauth2.RefreshTokenGrantType:
		values.Set("refresh_token", r.RefreshToken)
	case oauth2.AuthorizationCodeGrantType:
		values.Set("code", r.Code)
		values.Set("redirect_uri", r.RedirectURI)
	}

	if r.AccessTokenTTL > 0 {
		values.Set("access_token_ttl", strconv.Itoa(r.AccessTokenTTL))
	}
	if r.RefreshTokenTTL > 0 {
		values.Set("refresh_token_ttl", strconv.Itoa(r.RefreshTokenTTL))
	}
	return values
}
