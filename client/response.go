package client

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Response is the parsed result of a dispatched Request. The transport layer
// returns it for every completed round trip regardless of HTTP status -
// callers inspect the status and envelope themselves.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// OK reports whether the response carries a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(err, "[Response.JSON] unmarshal body")
	}
	return nil
}
