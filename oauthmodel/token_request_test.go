package oauthmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foxyfoxza/ringcentral-go/oauthmodel"
)

func TestRefreshTokenTTLFor(t *testing.T) {
	require.Equal(t, 604800, oauthmodel.RefreshTokenTTLFor(true))
	require.Equal(t, 36000, oauthmodel.RefreshTokenTTLFor(false))
}

func TestTokenRequest_FormValues(t *testing.T) {
	t.Run("password grant", func(t *testing.T) {
		values := oauthmodel.PasswordGrant("+15551234567", "101", "pass123", false).FormValues()

		require.Equal(t, "password", values.Get("grant_type"))
		require.Equal(t, "+15551234567", values.Get("username"))
		require.Equal(t, "101", values.Get("extension"))
		require.Equal(t, "pass123", values.Get("password"))
		require.Equal(t, "3600", values.Get("access_token_ttl"))
		require.Equal(t, "36000", values.Get("refresh_token_ttl"))
	})

	t.Run("password grant with remember requests the extended lifetime", func(t *testing.T) {
		values := oauthmodel.PasswordGrant("+15551234567", "", "pass123", true).FormValues()

		require.Equal(t, "604800", values.Get("refresh_token_ttl"))
		require.False(t, values.Has("extension"))
	})

	t.Run("refresh grant", func(t *testing.T) {
		values := oauthmodel.RefreshGrant("refresh-1", true).FormValues()

		require.Equal(t, "refresh_token", values.Get("grant_type"))
		require.Equal(t, "refresh-1", values.Get("refresh_token"))
		require.Equal(t, "3600", values.Get("access_token_ttl"))
		require.Equal(t, "604800", values.Get("refresh_token_ttl"))
		require.False(t, values.Has("username"))
	})

	t.Run("authorization code grant", func(t *testing.T) {
		values := oauthmodel.AuthorizationCodeGrant("code-1", "https://app/cb").FormValues()

		require.Equal(t, "authorization_code", values.Get("grant_type"))
		require.Equal(t, "code-1", values.Get("code"))
		require.Equal(t, "https://app/cb", values.Get("redirect_uri"))
		require.False(t, values.Has("access_token_ttl"))
		require.False(t, values.Has("refresh_token_ttl"))
	})
}
