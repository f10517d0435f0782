package adapter

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/mock"
	"github.com/MKhiriev/til-client/internal/utils"
	"github.com/MKhiriev/til-client/models"
)

// countingServer is an httptest server that counts every request it sees.
type countingServer struct {
	*httptest.Server
	calls atomic.Int32
}

func newCountingServer(t *testing.T, handler http.HandlerFunc) *countingServer {
	t.Helper()
	s := &countingServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *countingServer) Calls() int {
	return int(s.calls.Load())
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newTestHTTPClient(url string) *utils.HTTPClient {
	return utils.NewHTTPClient(url, 5*time.Second, logger.Nop())
}

func newAcronymClient(t *testing.T, url string) (*ResourceClient[models.Acronym, models.CreateAcronymData], *mock.MockSession) {
	t.Helper()
	ctrl := gomock.NewController(t)
	session := mock.NewMockSession(ctrl)
	return NewResourceClient[models.Acronym, models.CreateAcronymData](newTestHTTPClient(url), session, "acronyms", logger.Nop()), session
}

func idPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

// withToken makes session report token on every read.
func withToken(session *mock.MockSession, token string) {
	session.EXPECT().CurrentToken(gomock.Any()).Return(token, true).AnyTimes()
}

// withoutToken makes session report no token.
func withoutToken(session *mock.MockSession) {
	session.EXPECT().CurrentToken(gomock.Any()).Return("", false).AnyTimes()
}

func mockSession(ctrl *gomock.Controller) *mock.MockSession {
	return mock.NewMockSession(ctrl)
}
