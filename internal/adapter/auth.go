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
	"github.com/MKhiriev/til-client/models"
)

const (
	passwordLoginPath  = "/api/users/login"
	federatedLoginPath = "/api/users/siwa"
)

// AuthClient performs the login handshakes and returns fresh tokens. It
// never reads or writes the session; storing the token is the caller's job.
type AuthClient struct {
	http   *utils.HTTPClient
	logger *logger.Logger
}

func NewAuthClient(client *utils.HTTPClient, log *logger.Logger) *AuthClient {
	return &AuthClient{
		http:   client,
		logger: log,
	}
}

// LoginWithPassword exchanges HTTP Basic credentials for a token. Any
// response other than 200 with a token envelope is [ErrBadCredentials];
// network failures are [ErrTransport].
func (a *AuthClient) LoginWithPassword(ctx context.Context, username, password string) (string, error) {
	req := a.http.R().
		SetContext(ctx).
		SetBasicAuth(username, password)

	token, err := a.login(req, passwordLoginPath)
	if errors.Is(err, ErrTransport) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadCredentials, err)
	}
	return token, nil
}

// LoginWithFederatedIdentity exchanges an identity-provider assertion for a
// token. An empty assertion, or one that is not a JWT, fails with
// [ErrBadAssertion] before any request is sent.
func (a *AuthClient) LoginWithFederatedIdentity(ctx context.Context, identity models.FederatedIdentity) (string, error) {
	if identity.Assertion == "" {
		return "", fmt.Errorf("%w: empty assertion", ErrBadAssertion)
	}
	if _, err := utils.ParseUnverifiedClaims(identity.Assertion); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadAssertion, err)
	}

	req := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewSignInWithAppleToken(identity))

	token, err := a.login(req, federatedLoginPath)
	if errors.Is(err, ErrTransport) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadAssertion, err)
	}
	return token, nil
}

func (a *AuthClient) login(req *resty.Request, path string) (string, error) {
	start := time.Now()
	resp, err := req.Post(path)
	if err != nil {
		return "", fmt.Errorf("%w: POST %s: %w", ErrTransport, path, err)
	}

	a.logger.Debug().
		Str("method", http.MethodPost).
		Str("url", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("login completed")

	if err = mapHTTPError(resp, exactly(http.StatusOK)); err != nil {
		return "", err
	}

	token, err := decodeBody[models.Token](resp)
	if err != nil {
		return "", err
	}
	if token.Value == "" {
		return "", fmt.Errorf("%w: empty token", ErrDecoding)
	}

	return token.Value, nil
}
