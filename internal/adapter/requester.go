package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/utils"
)

// errTokenAbsentTolerated is returned by bearer under
// [SucceedOnMissingToken]; callers turn it into success.
var errTokenAbsentTolerated = errors.New("no token, tolerated by policy")

// requester executes requests on behalf of the resource clients and applies
// the shared authentication rules.
type requester struct {
	http    *utils.HTTPClient
	session Session
	logger  *logger.Logger
}

// bearer returns the current token. Without one the session is cleared and
// policy decides the result.
func (r *requester) bearer(ctx context.Context, policy MissingTokenPolicy) (string, error) {
	if token, ok := r.session.CurrentToken(ctx); ok {
		return token, nil
	}

	r.invalidate(ctx, "no stored token")
	if policy == SucceedOnMissingToken {
		return "", errTokenAbsentTolerated
	}
	return "", fmt.Errorf("%w: not logged in", ErrAuthRequired)
}

func (r *requester) invalidate(ctx context.Context, reason string) {
	r.logger.Warn().Str("reason", reason).Msg("clearing session")
	if err := r.session.ClearSession(ctx); err != nil {
		r.logger.Err(err).Msg("failed to clear session")
	}
}

// request starts a request bound to ctx, with the bearer token if given.
func (r *requester) request(ctx context.Context, token string) *resty.Request {
	req := r.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// execute sends req and classifies the outcome. On an authenticated call a
// 401 clears the session and yields [ErrAuthRequired].
func (r *requester) execute(ctx context.Context, req *resty.Request, method, url string, accept acceptFunc, authenticated bool) (*resty.Response, error) {
	start := time.Now()
	resp, err := req.Execute(method, url)
	if err != nil {
		r.logger.Debug().Err(err).
			Str("method", method).
			Str("url", url).
			Dur("elapsed", time.Since(start)).
			Msg("request failed")
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, url, err)
	}

	r.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if authenticated && resp.StatusCode() == http.StatusUnauthorized {
		r.invalidate(ctx, "server rejected token")
		return nil, fmt.Errorf("%w: server rejected token", ErrAuthRequired)
	}

	if err = mapHTTPError(resp, accept); err != nil {
		return nil, err
	}
	return resp, nil
}
