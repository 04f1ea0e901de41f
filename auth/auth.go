// Package auth holds the token state of one API session: the current
// access/refresh token pair, their computed expiry instants and the
// remember policy chosen at login.
//
// Auth has no concurrency control of its own - the session manager that
// owns it serializes all mutation.
package auth

import (
	"time"

	"github.com/foxyfoxza/ringcentral-go/internal/utils"
	"github.com/foxyfoxza/ringcentral-go/oauth2"
)

const defaultTokenType = "Bearer"

// Auth represents the current authentication state for one session.
// At most one token set is current at a time - SetData atomically replaces
// the previous set, Reset discards it.
type Auth struct {
	accessToken        string
	refreshToken       string
	tokenType          string
	accessTokenExpiry  time.Time
	refreshTokenExpiry time.Time
	remember           bool
	nowFunc            func() time.Time
}

// Option defines a function type to modify the Auth instance.
type Option func(*Auth)

// WithNowFunc sets the clock function (primarily for testing).
func WithNowFunc(now func() time.Time) Option {
	return func(a *Auth) {
		a.nowFunc = now
	}
}

// New creates an empty Auth. Both validity queries report false until
// SetData stores a token set.
func New(options ...Option) *Auth {
	a := &Auth{
		tokenType: defaultTokenType,
		nowFunc:   time.Now,
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// SetData stores the token set from a successful token endpoint round trip,
// computing each expiry instant as now + the server-declared TTL. The update
// is all-or-nothing: on a validation error the prior state is retained.
func (a *Auth) SetData(tr *oauth2.TokenResponse) error {
	if tr == nil {
		return MissingTokenResponseErr
	}
	accessToken := utils.Value(tr.AccessToken)
	if accessToken == "" {
		return MissingAccessTokenErr
	}
	if tr.ExpiresIn <= 0 {
		return MissingTokenExpiryErr
	}
	refreshToken := utils.Value(tr.RefreshToken)
	if refreshToken != "" && tr.RefreshTokenExpiresIn <= 0 {
		return MissingRefreshExpiryErr
	}

	now := a.nowFunc()
	a.accessToken = accessToken
	a.accessTokenExpiry = now.Add(time.Duration(tr.ExpiresIn) * time.Second)
	a.refreshToken = refreshToken
	if refreshToken != "" {
		a.refreshTokenExpiry = now.Add(time.Duration(tr.RefreshTokenExpiresIn) * time.Second)
	} else {
		a.refreshTokenExpiry = time.Time{}
	}
	if tr.TokenType != "" {
		a.tokenType = tr.TokenType
	} else {
		a.tokenType = defaultTokenType
	}
	return nil
}

// Reset clears both tokens and both expiry instants. After Reset both
// validity queries return false.
func (a *Auth) Reset() {
	a.accessToken = ""
	a.refreshToken = ""
	a.accessTokenExpiry = time.Time{}
	a.refreshTokenExpiry = time.Time{}
	a.tokenType = defaultTokenType
}

// IsAccessTokenValid reports whether an access token is present and the
// current instant is strictly before its expiry.
func (a *Auth) IsAccessTokenValid() bool {
	return a.accessToken != "" && a.nowFunc().Before(a.accessTokenExpiry)
}

// IsRefreshTokenValid reports whether a refresh token is present and the
// current instant is strictly before its expiry.
func (a *Auth) IsRefreshTokenValid() bool {
	return a.refreshToken != "" && a.nowFunc().Before(a.refreshTokenExpiry)
}

func (a *Auth) AccessToken() string {
	return a.accessToken
}

func (a *Auth) RefreshToken() string {
	return a.refreshToken
}

func (a *Auth) TokenType() string {
	return a.tokenType
}

// AccessTokenExpiry returns the instant the current access token stops
// being valid. Zero when no token set is stored.
func (a *Auth) AccessTokenExpiry() time.Time {
	return a.accessTokenExpiry
}

// Remember reports the refresh-token lifetime policy recorded at login.
func (a *Auth) Remember() bool {
	return a.remember
}

func (a *Auth) SetRemember(remember bool) {
	a.remember = remember
}
