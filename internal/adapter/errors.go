package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport wraps network and connectivity failures.
	ErrTransport = errors.New("transport error")
	// ErrResponse is matched by every [*ResponseError].
	ErrResponse = errors.New("unexpected response status")
	// ErrAuthRequired means no token was available or the server rejected
	// it. The session has already been cleared when this is returned.
	ErrAuthRequired = errors.New("authentication required")
	// ErrDecoding means the response body did not have the expected shape.
	ErrDecoding = errors.New("decoding error")
	// ErrMissingIdentifier means a required entity or related id was absent.
	// No request was sent.
	ErrMissingIdentifier = errors.New("missing identifier")
)

// Login failures returned by [AuthClient].
var (
	ErrBadCredentials = errors.New("bad credentials")
	ErrBadAssertion   = errors.New("bad identity assertion")
)

// ResponseError carries an unexpected status and the response body.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

func (e *ResponseError) Unwrap() error {
	return ErrResponse
}
