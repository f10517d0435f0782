package service

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	stub "github.com/MKhiriev/til-client/internal/handler/http"
	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/session"
	"github.com/MKhiriev/til-client/internal/store"
	"github.com/MKhiriev/til-client/internal/utils"
	"github.com/MKhiriev/til-client/internal/workers"
	"github.com/MKhiriev/til-client/models"
)

type testEnv struct {
	services *ClientServices
	sessions *session.Manager
	repo     *store.TILMemoryRepository
	admin    models.User
	server   *httptest.Server
}

// newTestEnv runs the stub API with user admin/password and returns
// services talking to it through a real session manager.
func newTestEnv(t *testing.T, credentials store.CredentialStore) *testEnv {
	t.Helper()
	ctx := context.Background()

	repo := store.NewTILMemoryRepository("test")
	admin, err := repo.CreateUser(ctx, models.CreateUserData{Name: "Admin", Username: "admin", Password: "password"})
	require.NoError(t, err)

	server := httptest.NewServer(stub.NewHandler(repo, "sign-key", logger.Nop()).Init())
	t.Cleanup(server.Close)

	queue := workers.NewSerialQueue(8, logger.Nop())
	queue.Run()
	t.Cleanup(queue.Stop)

	if credentials == nil {
		credentials = store.NewMemoryCredentialStore()
	}
	sessions := session.NewManager(ctx, credentials, queue, logger.Nop())

	client := utils.NewHTTPClient(server.URL, 5*time.Second, logger.Nop())

	return &testEnv{
		services: NewClientServices(client, sessions, logger.Nop()),
		sessions: sessions,
		repo:     repo,
		admin:    admin,
		server:   server,
	}
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	require.NoError(t, e.services.Auth.Login(context.Background(), "admin", "password"))
}
