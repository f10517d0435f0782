package client

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/til-client/internal/config"
	stub "github.com/MKhiriev/til-client/internal/handler/http"
	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/service"
	"github.com/MKhiriev/til-client/internal/session"
	"github.com/MKhiriev/til-client/internal/store"
	"github.com/MKhiriev/til-client/internal/utils"
	"github.com/MKhiriev/til-client/internal/workers"
	"github.com/MKhiriev/til-client/models"
)

// testCLI runs commands against the stub API. Every run shares one
// credential store so a login survives between runs, as on disk.
type testCLI struct {
	server      *httptest.Server
	credentials store.CredentialStore
	lastFlags   config.Flags
	builds      int
	closed      int
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()

	repo := store.NewTILMemoryRepository("test")
	_, err := repo.CreateUser(context.Background(), models.CreateUserData{Name: "Admin", Username: "admin", Password: "password"})
	require.NoError(t, err)

	server := httptest.NewServer(stub.NewHandler(repo, "sign-key", logger.Nop()).Init())
	t.Cleanup(server.Close)

	return &testCLI{server: server, credentials: store.NewMemoryCredentialStore()}
}

func (tc *testCLI) build(ctx context.Context, flags config.Flags) (*Runtime, error) {
	tc.lastFlags = flags
	tc.builds++

	queue := workers.NewSerialQueue(4, logger.Nop())
	queue.Run()

	sessions := session.NewManager(ctx, tc.credentials, queue, logger.Nop())
	client := utils.NewHTTPClient(tc.server.URL, 5*time.Second, logger.Nop())

	return &Runtime{
		Services: service.NewClientServices(client, sessions, logger.Nop()),
		Close: func() error {
			queue.Stop()
			tc.closed++
			return nil
		},
	}, nil
}

// run executes args and returns stdout.
func (tc *testCLI) run(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	app := NewApp(models.NewAppBuildInfo("test", "today", "abc"), tc.build, &stdout, &stderr)
	err := app.Run(append([]string{"til"}, args...))
	return stdout.String(), err
}

func (tc *testCLI) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := tc.run(args...)
	require.NoError(t, err)
	return out
}
