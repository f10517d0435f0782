package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/til-client/internal/adapter"
	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/models"
)

type clientAuthService struct {
	auth     *adapter.AuthClient
	sessions SessionManager
	logger   *logger.Logger
}

func NewClientAuthService(auth *adapter.AuthClient, sessions SessionManager, log *logger.Logger) AuthService {
	return &clientAuthService{auth: auth, sessions: sessions, logger: log}
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) error {
	if err := requireFields("username", username, "password", password); err != nil {
		return err
	}

	token, err := a.auth.LoginWithPassword(ctx, username, password)
	if err != nil {
		return mapAdapterError(err)
	}

	return a.store(ctx, token, "password")
}

func (a *clientAuthService) LoginFederated(ctx context.Context, identity models.FederatedIdentity) error {
	token, err := a.auth.LoginWithFederatedIdentity(ctx, identity)
	if err != nil {
		return mapAdapterError(err)
	}

	return a.store(ctx, token, "siwa")
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	a.logger.Info().Msg("logged out")
	return nil
}

func (a *clientAuthService) IsAuthenticated() bool {
	return a.sessions.IsAuthenticated()
}

func (a *clientAuthService) store(ctx context.Context, token, method string) error {
	if err := a.sessions.SetToken(ctx, token); err != nil {
		return fmt.Errorf("error saving token: %w", err)
	}
	a.logger.Info().Str("method", method).Msg("logged in")
	return nil
}
