// Package platform implements the session manager of the SDK: it owns the
// token state, orchestrates the login/refresh/logout/authorization-code
// flows against the OAuth endpoints and gates every authenticated request
// behind a logged-in check that transparently renews expired access tokens.
package platform

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/foxyfoxza/ringcentral-go/auth"
	"github.com/foxyfoxza/ringcentral-go/client"
	"github.com/foxyfoxza/ringcentral-go/oauth2"
	"github.com/foxyfoxza/ringcentral-go/oauthmodel"
)

// refreshKey collapses all concurrent implicit refreshes into one flight.
const refreshKey = "refresh"

// Platform is the session manager for one API session. It is safe for use
// by multiple concurrent request-issuing goroutines: token mutation is
// serialized by one mutex and the implicit refresh inside LoggedIn is
// deduplicated so a refresh token is never consumed twice concurrently.
//
// The bearer credential is threaded into each outbound request at dispatch
// time; the transport carries no mutable default authorization state.
type Platform struct {
	appKey    string
	appSecret string
	serverURL string

	auth      *auth.Auth
	transport client.Transport

	// mu serializes Auth mutation across the login/refresh/logout/code
	// exchange flows.
	mu sync.Mutex

	// refreshGroup deduplicates concurrent implicit refreshes: one network
	// call, every waiter observes its result.
	refreshGroup singleflight.Group

	muListeners sync.Mutex
	callbacks   []AuthRefreshCallback
	listeners   []chan *client.Response
}

// Option defines a function type to modify the Platform instance.
type Option func(*Platform)

// WithAuth replaces the owned Auth instance (primarily for testing with an
// injected clock).
func WithAuth(a *auth.Auth) Option {
	return func(p *Platform) {
		p.auth = a
	}
}

// WithAuthRefreshCallback registers a sink invoked with the parsed response
// of every auth-endpoint round trip, success or failure.
func WithAuthRefreshCallback(cb AuthRefreshCallback) Option {
	return func(p *Platform) {
		p.callbacks = append(p.callbacks, cb)
	}
}

// New initializes a Platform with the app's static credentials, the server
// base URL and the transport used for all dispatch.
func New(appKey, appSecret, serverURL string, transport client.Transport, options ...Option) (*Platform, error) {
	if appKey == "" {
		return nil, errors.New("[platform.New] appKey is required")
	}
	if appSecret == "" {
		return nil, errors.New("[platform.New] appSecret is required")
	}
	if serverURL == "" {
		return nil, errors.New("[platform.New] serverURL is required")
	}
	if transport == nil {
		return nil, errors.New("[platform.New] transport is required")
	}

	p := &Platform{
		appKey:    appKey,
		appSecret: appSecret,
		serverURL: strings.TrimSuffix(serverURL, "/"),
		transport: transport,
		auth:      auth.New(),
	}

	for _, opt := range options {
		opt(p)
	}

	return p, nil
}

// Auth exposes the owned token state. Callers must not mutate it.
func (p *Platform) Auth() *auth.Auth {
	return p.auth
}

// Login performs a password-grant token request and stores the resulting
// token set. The remember flag selects the refresh-token lifetime requested
// now and on every subsequent refresh.
func (p *Platform) Login(ctx context.Context, username, extension, password string, remember bool) (*client.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	resp, err := p.requestToken(ctx, oauthmodel.PasswordGrant(username, extension, password, remember))
	if err != nil {
		return resp, errors.Wrap(err, "[Platform.Login] token request")
	}
	if err := p.storeTokenResponse(resp); err != nil {
		return resp, errors.Wrap(err, "[Platform.Login] store token response")
	}
	p.auth.SetRemember(remember)
	return resp, nil
}

// Refresh trades the current refresh token for a new token set, reusing the
// remember policy recorded at login. It fails fast with ExpiredCredentialErr
// when no valid refresh token is held - no network call is made. A failed
// refresh leaves the pre-refresh token state untouched so a later retry can
// re-check refresh validity instead of forcing a full re-login.
func (p *Platform) Refresh(ctx context.Context) (*client.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshLocked(ctx)
}

func (p *Platform) refreshLocked(ctx context.Context) (*client.Response, error) {
	if !p.auth.IsRefreshTokenValid() {
		return nil, ExpiredCredentialErr
	}

	resp, err := p.requestToken(ctx, oauthmodel.RefreshGrant(p.auth.RefreshToken(), p.auth.Remember()))
	if err != nil {
		return resp, errors.Wrap(err, "[Platform.Refresh] token request")
	}
	if err := p.storeTokenResponse(resp); err != nil {
		return resp, errors.Wrap(err, "[Platform.Refresh] store token response")
	}
	return resp, nil
}

// Logout clears the local token state and then revokes the access token
// that was current immediately before the clear. The clear happens before
// the revoke round trip: a failed revoke must never leave a
// stale-but-claimed-valid token in memory, even though the server-side
// token may then outlive the local session.
func (p *Platform) Logout(ctx context.Context) (*client.Response, error) {
	p.mu.Lock()
	accessToken := p.auth.AccessToken()
	p.auth.Reset()
	p.mu.Unlock()

	form := url.Values{}
	form.Set("token", accessToken)

	resp, err := p.sendAuthRequest(ctx, oauthmodel.RevokeEndpoint, form)
	if err != nil {
		return resp, errors.Wrap(err, "[Platform.Logout] revoke request")
	}
	if !resp.OK() {
		return resp, errors.Wrapf(CredentialErr, "[Platform.Logout] revoke rejected with status %d", resp.StatusCode)
	}
	return resp, nil
}

// Authenticate exchanges an authorization code obtained via AuthorizeURI for
// a token set, storing it exactly like Login.
func (p *Platform) Authenticate(ctx context.Context, authCode, redirectURI string) (*client.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	resp, err := p.requestToken(ctx, oauthmodel.AuthorizationCodeGrant(authCode, redirectURI))
	if err != nil {
		return resp, errors.Wrap(err, "[Platform.Authenticate] token request")
	}
	if err := p.storeTokenResponse(resp); err != nil {
		return resp, errors.Wrap(err, "[Platform.Authenticate] store token response")
	}
	return resp, nil
}

// AuthorizeURI constructs the user-facing authorization URL for the
// authorization-code flow. Pure string construction - no state mutation, no
// network call.
func (p *Platform) AuthorizeURI(redirectURI, state string) string {
	return fmt.Sprintf("%s%s?response_type=%s&state=%s&redirect_uri=%s&client_id=%s",
		p.serverURL,
		oauthmodel.AuthorizeEndpoint,
		oauth2.CodeResponseType,
		url.QueryEscape(state),
		url.QueryEscape(redirectURI),
		url.QueryEscape(p.appKey),
	)
}

// LoggedIn is the gatekeeper for every authenticated call. A valid access
// token answers true immediately. An expired access token with a valid
// refresh token triggers one synchronous refresh shared by all concurrent
// callers; each observes the same outcome. Anything else answers false
// without mutation.
func (p *Platform) LoggedIn(ctx context.Context) bool {
	return p.ensureAuthorized(ctx) == nil
}

func (p *Platform) ensureAuthorized(ctx context.Context) error {
	p.mu.Lock()
	accessValid := p.auth.IsAccessTokenValid()
	refreshValid := p.auth.IsRefreshTokenValid()
	p.mu.Unlock()

	if accessValid {
		return nil
	}
	if !refreshValid {
		return SessionExpiredErr
	}

	// The winner's context drives the shared flight; waiters that joined
	// later still observe its result.
	_, err, _ := p.refreshGroup.Do(refreshKey, func() (any, error) {
		p.mu.Lock()
		defer p.mu.Unlock()
		// A flight that completed while this caller queued may already
		// have renewed the token set.
		if p.auth.IsAccessTokenValid() {
			return nil, nil
		}
		_, err := p.refreshLocked(ctx)
		return nil, err
	})
	if err != nil {
		log.Err(err).Msg("Implicit refresh failed")
		return errors.Wrap(err, "[Platform.ensureAuthorized] refresh")
	}
	return nil
}

// requestToken performs one token endpoint round trip. Callers hold p.mu.
func (p *Platform) requestToken(ctx context.Context, grant oauthmodel.TokenRequest) (*client.Response, error) {
	resp, err := p.sendAuthRequest(ctx, oauthmodel.TokenEndpoint, grant.FormValues())
	if err != nil {
		return resp, err
	}
	if !resp.OK() {
		return resp, errors.Wrapf(CredentialErr, "status %d: %s", resp.StatusCode, resp.Body)
	}
	return resp, nil
}

// sendAuthRequest dispatches a form request to an auth endpoint with the
// Basic credential computed from the app key/secret pair. The parsed
// response of every completed round trip is published to the auth-refresh
// sinks, success or failure alike.
func (p *Platform) sendAuthRequest(ctx context.Context, endpoint string, form url.Values) (*client.Response, error) {
	req := client.NewRequest(http.MethodPost, p.serverURL+endpoint).
		WithForm(form).
		WithHeader("Authorization", p.basicAuthToken())

	resp, err := p.transport.Send(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "[Platform.sendAuthRequest] dispatch")
	}

	p.publishAuthRefresh(resp)
	return resp, nil
}

func (p *Platform) basicAuthToken() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(p.appKey+":"+p.appSecret))
}

// storeTokenResponse parses a successful token endpoint response into Auth.
// Callers hold p.mu.
func (p *Platform) storeTokenResponse(resp *client.Response) error {
	var tr oauth2.TokenResponse
	if err := resp.JSON(&tr); err != nil {
		return err
	}
	return p.auth.SetData(&tr)
}
