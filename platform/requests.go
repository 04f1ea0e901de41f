package platform

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/foxyfoxza/ringcentral-go/client"
)

// Send dispatches an authenticated request. It fails fast with
// SessionExpiredErr when LoggedIn answers false - nothing reaches the
// transport. The current bearer credential is attached to this request
// alone; no shared transport state is mutated. Non-2xx responses are
// returned as-is for the caller to inspect.
func (p *Platform) Send(ctx context.Context, req *client.Request) (*client.Response, error) {
	if !p.LoggedIn(ctx) {
		return nil, SessionExpiredErr
	}

	p.mu.Lock()
	authHeader := p.auth.TokenType() + " " + p.auth.AccessToken()
	p.mu.Unlock()

	req.WithHeader("Authorization", authHeader)
	req.URL = p.apiURL(req.URL)

	resp, err := p.transport.Send(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "[Platform.Send] dispatch")
	}
	return resp, nil
}

// Get dispatches an authenticated GET to the given endpoint.
func (p *Platform) Get(ctx context.Context, endpoint string, query url.Values) (*client.Response, error) {
	return p.Send(ctx, client.NewRequest(http.MethodGet, endpoint).WithQuery(query))
}

// Post dispatches an authenticated POST with a JSON body.
func (p *Platform) Post(ctx context.Context, endpoint string, body map[string]any) (*client.Response, error) {
	return p.Send(ctx, client.NewRequest(http.MethodPost, endpoint).WithJSON(body))
}

// Put dispatches an authenticated PUT with a JSON body.
func (p *Platform) Put(ctx context.Context, endpoint string, body map[string]any) (*client.Response, error) {
	return p.Send(ctx, client.NewRequest(http.MethodPut, endpoint).WithJSON(body))
}

// Delete dispatches an authenticated DELETE.
func (p *Platform) Delete(ctx context.Context, endpoint string) (*client.Response, error) {
	return p.Send(ctx, client.NewRequest(http.MethodDelete, endpoint))
}

// apiURL resolves an endpoint path against the server base URL. Absolute
// URLs pass through untouched.
func (p *Platform) apiURL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return p.serverURL + endpoint
}
