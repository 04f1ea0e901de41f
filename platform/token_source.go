package platform

import (
	"context"

	goauth2 "golang.org/x/oauth2"
)

// TokenSource adapts the session to golang.org/x/oauth2, so the SDK can
// feed libraries that expect an oauth2.TokenSource. Each Token call runs
// through the LoggedIn gate and therefore shares the session's
// single-flight refresh.
func (p *Platform) TokenSource(ctx context.Context) goauth2.TokenSource {
	return &sessionTokenSource{ctx: ctx, platform: p}
}

type sessionTokenSource struct {
	ctx      context.Context
	platform *Platform
}

func (s *sessionTokenSource) Token() (*goauth2.Token, error) {
	if !s.platform.LoggedIn(s.ctx) {
		return nil, SessionExpiredErr
	}

	s.platform.mu.Lock()
	defer s.platform.mu.Unlock()

	return &goauth2.Token{
		AccessToken:  s.platform.auth.AccessToken(),
		TokenType:    s.platform.auth.TokenType(),
		RefreshToken: s.platform.auth.RefreshToken(),
		Expiry:       s.platform.auth.AccessTokenExpiry(),
	}, nil
}
