package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/go-resty/resty/v2"
)

// acceptFunc reports whether a status code counts as success for a call.
type acceptFunc func(status int) bool

func successful(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func exactly(codes ...int) acceptFunc {
	return func(status int) bool {
		return slices.Contains(codes, status)
	}
}

// mapHTTPError returns nil for an accepted status and a [*ResponseError]
// otherwise. 401 handling is left to the caller, which knows whether the
// route was authenticated.
func mapHTTPError(resp *resty.Response, accept acceptFunc) error {
	if accept(resp.StatusCode()) {
		return nil
	}

	return &ResponseError{
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}
}

// decodeBody unmarshals the response body into a fresh V.
func decodeBody[V any](resp *resty.Response) (V, error) {
	var v V
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	return v, nil
}
