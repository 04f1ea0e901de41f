package auth

import "errors"

var (
	MissingTokenResponseErr = errors.New("missing token response")
	MissingAccessTokenErr   = errors.New("token response missing access_token")
	MissingTokenExpiryErr   = errors.New("token response missing expires_in")
	MissingRefreshExpiryErr = errors.New("token response missing refresh_token_expires_in")
)
