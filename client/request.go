package client

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Request is the wire request handed to a Transport. It is builder-style
// mutable up until FinalizeBody, after which BodyBytes and ContentType hold
// the exact bytes that go on the wire (deterministic for tests).
type Request struct {
	Method  string
	URL     string
	Query   url.Values
	Headers map[string]string

	// Form takes precedence over Body when both are set.
	Form url.Values
	Body map[string]any

	BodyBytes   []byte
	ContentType string

	// MethodTunneling requests that verbs other than GET/POST are carried
	// as a POST with an X-HTTP-Method-Override header, for transports and
	// proxies that cannot carry them natively.
	MethodTunneling bool
}

// OverrideHeader carries the tunneled verb when MethodTunneling is in effect.
const OverrideHeader = "X-HTTP-Method-Override"

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

func NewRequest(method, rawURL string) *Request {
	return &Request{
		Method:  method,
		URL:     rawURL,
		Headers: make(map[string]string),
	}
}

func (r *Request) WithQuery(query url.Values) *Request {
	r.Query = query
	return r
}

func (r *Request) WithHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

func (r *Request) WithForm(form url.Values) *Request {
	r.Form = form
	return r
}

func (r *Request) WithJSON(body map[string]any) *Request {
	r.Body = body
	return r
}

func (r *Request) WithMethodTunneling() *Request {
	r.MethodTunneling = true
	return r
}

// FinalizeBody prepares BodyBytes and ContentType exactly once per call.
// Rules:
// - If BodyBytes is already set, it is respected as-is.
// - A Form body encodes to application/x-www-form-urlencoded.
// - Otherwise Body marshals to application/json.
func (r *Request) FinalizeBody() error {
	if r.BodyBytes != nil {
		return nil
	}

	if r.Form != nil {
		r.BodyBytes = []byte(r.Form.Encode())
		if r.ContentType == "" {
			r.ContentType = contentTypeForm
		}
		return nil
	}

	if r.Body != nil {
		buf, err := json.Marshal(r.Body)
		if err != nil {
			return errors.Wrap(err, "[Request.FinalizeBody] marshal body")
		}
		r.BodyBytes = buf
		if r.ContentType == "" {
			r.ContentType = contentTypeJSON
		}
	}
	return nil
}

// FullURL joins the base URL with the encoded query string.
func (r *Request) FullURL() string {
	if len(r.Query) == 0 {
		return r.URL
	}
	return r.URL + "?" + r.Query.Encode()
}

// WireMethod resolves the HTTP verb that goes on the wire. When method
// tunneling applies it returns POST plus the verb to carry in the
// override header; otherwise the override is empty.
func (r *Request) WireMethod() (method, override string) {
	if !r.MethodTunneling {
		return r.Method, ""
	}
	switch r.Method {
	case http.MethodGet, http.MethodPost:
		return r.Method, ""
	default:
		return http.MethodPost, r.Method
	}
}
