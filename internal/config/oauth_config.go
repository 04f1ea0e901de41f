package config

import (
	"time"

	"github.com/foxyfoxza/ringcentral-go/oauthmodel"
)

type OAuthConfig interface {
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetRememberRefreshTokenExpiry() time.Duration
	GetRequestTimeout() time.Duration
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetAccessTokenExpiry() time.Duration {
	return oauthmodel.AccessTokenTTL * time.Second // 1 hour
}

func (OAuth) GetRefreshTokenExpiry() time.Duration {
	return oauthmodel.RefreshTokenTTL * time.Second // 10 hours
}

func (OAuth) GetRememberRefreshTokenExpiry() time.Duration {
	return oauthmodel.RememberRefreshTokenTTL * time.Second // 7 days
}

func (OAuth) GetRequestTimeout() time.Duration {
	return 30 * time.Second
}
