package platform

import "errors"

var (
	// CredentialErr is returned when the auth server rejects the credentials
	// of a login, refresh or code-exchange request. The upstream response is
	// surfaced alongside it, never retried.
	CredentialErr = errors.New("credentials rejected by server")

	// ExpiredCredentialErr is returned by Refresh when no valid refresh
	// token is held. No network call is made.
	ExpiredCredentialErr = errors.New("refresh token missing or expired")

	// SessionExpiredErr is returned when an authenticated request is
	// attempted while the session is not logged in. No network call is made.
	SessionExpiredErr = errors.New("session expired")
)
