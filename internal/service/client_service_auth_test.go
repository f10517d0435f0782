package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/til-client/internal/adapter"
	"github.com/MKhiriev/til-client/internal/mock"
	"github.com/MKhiriev/til-client/internal/store"
	"github.com/MKhiriev/til-client/models"
)

func TestClientAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
		wantAuth bool
	}{
		{name: "valid credentials", username: "admin", password: "password", wantAuth: true},
		{name: "wrong password", username: "admin", password: "nope", wantErr: ErrLoginFailed},
		{name: "empty username", username: "", password: "password", wantErr: ErrInvalidInput},
		{name: "empty password", username: "admin", password: "", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)

			err := env.services.Auth.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantAuth, env.services.Auth.IsAuthenticated())
		})
	}
}

func TestClientAuthService_WrongPasswordIsBadCredentials(t *testing.T) {
	env := newTestEnv(t, nil)

	err := env.services.Auth.Login(context.Background(), "admin", "nope")
	assert.ErrorIs(t, err, adapter.ErrBadCredentials)
}

func TestClientAuthService_LoginFederated(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "apple-user"}).SignedString([]byte("k"))
	require.NoError(t, err)

	err = env.services.Auth.LoginFederated(ctx, models.FederatedIdentity{Assertion: "not-a-jwt"})
	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.ErrorIs(t, err, adapter.ErrBadAssertion)
	assert.False(t, env.services.Auth.IsAuthenticated())

	require.NoError(t, env.services.Auth.LoginFederated(ctx, models.FederatedIdentity{
		Assertion: assertion, GivenName: "Tim", FamilyName: "Cook", Email: "tim@example.com",
	}))
	assert.True(t, env.services.Auth.IsAuthenticated())

	users, err := env.services.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Tim Cook", users[1].Name)
	assert.Equal(t, "tim@example.com", users[1].Username)
}

func TestClientAuthService_Logout(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	env.login(t)

	require.NoError(t, env.services.Auth.Logout(ctx))
	assert.False(t, env.services.Auth.IsAuthenticated())

	_, ok := env.sessions.CurrentToken(ctx)
	assert.False(t, ok)

	require.NoError(t, env.services.Auth.Logout(ctx))
}

func TestClientAuthService_LoginSaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialStore(ctrl)
	credentials.EXPECT().Load(gomock.Any()).Return("", store.ErrCredentialNotFound).AnyTimes()
	credentials.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	env := newTestEnv(t, credentials)

	err := env.services.Auth.Login(context.Background(), "admin", "password")
	assert.ErrorContains(t, err, "disk full")
	assert.False(t, env.services.Auth.IsAuthenticated())
}
