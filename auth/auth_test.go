package auth_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/foxyfoxza/ringcentral-go/auth"
	"github.com/foxyfoxza/ringcentral-go/internal/utils"
	"github.com/foxyfoxza/ringcentral-go/oauth2"
)

// fakeClock provides a controllable nowFunc for expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func tokenResponse(accessToken, refreshToken string, expiresIn, refreshExpiresIn int) *oauth2.TokenResponse {
	tr := &oauth2.TokenResponse{
		AccessToken: utils.Ptr(accessToken),
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}
	if refreshToken != "" {
		tr.RefreshToken = utils.Ptr(refreshToken)
		tr.RefreshTokenExpiresIn = refreshExpiresIn
	}
	return tr
}

func TestAuth_SetData(t *testing.T) {
	t.Run("valid token set answers both validity queries", func(t *testing.T) {
		clock := newFakeClock()
		a := auth.New(auth.WithNowFunc(clock.Now))

		err := a.SetData(tokenResponse("access-1", "refresh-1", 3600, 36000))
		require.NoError(t, err)
		require.True(t, a.IsAccessTokenValid())
		require.True(t, a.IsRefreshTokenValid())
		require.Equal(t, "access-1", a.AccessToken())
		require.Equal(t, "refresh-1", a.RefreshToken())
		require.Equal(t, "Bearer", a.TokenType())
	})

	t.Run("access validity ends once the TTL elapses", func(t *testing.T) {
		clock := newFakeClock()
		a := auth.New(auth.WithNowFunc(clock.Now))

		require.NoError(t, a.SetData(tokenResponse("access-1", "refresh-1", 3600, 36000)))

		clock.Advance(3599 * time.Second)
		require.True(t, a.IsAccessTokenValid())

		// Strictly-before comparison: the expiry instant itself is invalid.
		clock.Advance(1 * time.Second)
		require.False(t, a.IsAccessTokenValid())
		require.True(t, a.IsRefreshTokenValid())
	})

	t.Run("refresh validity ends once its TTL elapses", func(t *testing.T) {
		clock := newFakeClock()
		a := auth.New(auth.WithNowFunc(clock.Now))

		require.NoError(t, a.SetData(tokenResponse("access-1", "refresh-1", 3600, 36000)))

		clock.Advance(36001 * time.Second)
		require.False(t, a.IsAccessTokenValid())
		require.False(t, a.IsRefreshTokenValid())
	})

	t.Run("token type defaults to Bearer", func(t *testing.T) {
		a := auth.New()
		tr := tokenResponse("access-1", "", 3600, 0)
		tr.TokenType = ""
		require.NoError(t, a.SetData(tr))
		require.Equal(t, "Bearer", a.TokenType())
	})

	t.Run("new token set atomically replaces the old one", func(t *testing.T) {
		clock := newFakeClock()
		a := auth.New(auth.WithNowFunc(clock.Now))

		require.NoError(t, a.SetData(tokenResponse("access-1", "refresh-1", 3600, 36000)))
		require.NoError(t, a.SetData(tokenResponse("access-2", "", 3600, 0)))

		require.Equal(t, "access-2", a.AccessToken())
		require.Empty(t, a.RefreshToken())
		require.False(t, a.IsRefreshTokenValid())
	})
}

func TestAuth_SetDataValidation(t *testing.T) {
	clock := newFakeClock()
	a := auth.New(auth.WithNowFunc(clock.Now))
	require.NoError(t, a.SetData(tokenResponse("access-1", "refresh-1", 3600, 36000)))

	t.Run("nil response", func(t *testing.T) {
		require.ErrorIs(t, a.SetData(nil), auth.MissingTokenResponseErr)
	})

	t.Run("missing access token", func(t *testing.T) {
		require.ErrorIs(t, a.SetData(&oauth2.TokenResponse{ExpiresIn: 3600}), auth.MissingAccessTokenErr)
	})

	t.Run("missing expires_in", func(t *testing.T) {
		tr := tokenResponse("access-2", "", 0, 0)
		require.ErrorIs(t, a.SetData(tr), auth.MissingTokenExpiryErr)
	})

	t.Run("refresh token without its TTL", func(t *testing.T) {
		tr := tokenResponse("access-2", "", 3600, 0)
		tr.RefreshToken = utils.Ptr("refresh-2")
		require.ErrorIs(t, a.SetData(tr), auth.MissingRefreshExpiryErr)
	})

	t.Run("failed update retains the prior token set", func(t *testing.T) {
		require.Equal(t, "access-1", a.AccessToken())
		require.Equal(t, "refresh-1", a.RefreshToken())
		require.True(t, a.IsAccessTokenValid())
		require.True(t, a.IsRefreshTokenValid())
	})
}

func TestAuth_Reset(t *testing.T) {
	clock := newFakeClock()
	a := auth.New(auth.WithNowFunc(clock.Now))
	require.NoError(t, a.SetData(tokenResponse("access-1", "refresh-1", 3600, 36000)))

	a.Reset()

	require.False(t, a.IsAccessTokenValid())
	require.False(t, a.IsRefreshTokenValid())
	require.Empty(t, a.AccessToken())
	require.Empty(t, a.RefreshToken())
}

func TestAuth_Remember(t *testing.T) {
	a := auth.New()
	require.False(t, a.Remember())
	a.SetRemember(true)
	require.True(t, a.Remember())
}
