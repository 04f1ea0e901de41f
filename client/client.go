package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Transport dispatches a single Request and returns the parsed Response.
// Connection pooling, TLS and socket-level behaviour live behind this
// interface; the session layer above never touches net/http directly.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// HTTPTransport is the net/http implementation of Transport.
//
// Every dispatched request carries the SDK User-Agent pair and a unique
// RCRequestId header so server-side logs can be correlated with client calls.
type HTTPTransport struct {
	client    *http.Client
	userAgent string
}

var _ Transport = (*HTTPTransport)(nil)

// TransportOption defines a function type to modify the HTTPTransport instance.
type TransportOption func(*HTTPTransport)

// WithHTTPClient replaces the default pooled http.Client.
func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *HTTPTransport) {
		t.client = c
	}
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) TransportOption {
	return func(t *HTTPTransport) {
		t.client.Timeout = d
	}
}

// WithUserAgent sets the application identity carried in the User-Agent
// and RC-User-Agent headers.
func WithUserAgent(appName, appVersion string) TransportOption {
	return func(t *HTTPTransport) {
		t.userAgent = BuildUserAgent(appName, appVersion)
	}
}

func NewHTTPTransport(options ...TransportOption) *HTTPTransport {
	t := &HTTPTransport{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        50,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
				Proxy:               http.ProxyFromEnvironment,
			},
		},
		userAgent: BuildUserAgent("", ""),
	}

	for _, opt := range options {
		opt(t)
	}
	return t
}

// Send finalizes the request body, resolves method tunneling and performs
// the HTTP round trip. A Response is returned for every completed round trip
// regardless of status code; only transport-level failures produce errors.
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	if err := req.FinalizeBody(); err != nil {
		return nil, err
	}

	method, override := req.WireMethod()

	httpReq, err := http.NewRequestWithContext(ctx, method, req.FullURL(), bytes.NewReader(req.BodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "[HTTPTransport.Send] create request")
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if override != "" {
		httpReq.Header.Set(OverrideHeader, override)
	}
	if req.ContentType != "" && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set("RC-User-Agent", t.userAgent)
	httpReq.Header.Set("RCRequestId", uuid.NewString())

	log.Debug().Str("method", method).Str("url", req.URL).Msg("Dispatching request")

	httpResp, reqErr := t.client.Do(httpReq)
	if httpResp != nil {
		defer func() {
			io.Copy(io.Discard, httpResp.Body) // drain fully for connection reuse
			httpResp.Body.Close()
		}()
	}
	if reqErr != nil {
		return nil, errors.Wrap(reqErr, "[HTTPTransport.Send] perform request")
	}

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "[HTTPTransport.Send] read body")
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header.Clone(),
		Body:       bodyBytes,
	}, nil
}
