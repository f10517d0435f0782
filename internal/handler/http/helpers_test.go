package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/store"
	"github.com/MKhiriev/til-client/internal/validators"
	"github.com/MKhiriev/til-client/models"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

func newTestHandler() *Handler {
	return &Handler{
		repo:         store.NewTILMemoryRepository("test"),
		validator:    validators.NewTILValidator(),
		tokenSignKey: testSignKey,
		logger:       logger.Nop(),
	}
}

// newSeededHandler returns a handler whose repository holds user
// admin/password.
func newSeededHandler(t *testing.T) (*Handler, models.User) {
	t.Helper()
	h := newTestHandler()
	admin, err := h.repo.CreateUser(context.Background(), models.CreateUserData{
		Name: "Admin", Username: "admin", Password: "password",
	})
	require.NoError(t, err)
	return h, admin
}

type testRequest struct {
	method string
	path   string
	body   string
	token  string
	setup  func(r *http.Request)
}

func serve(h http.Handler, tr testRequest) *httptest.ResponseRecorder {
	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	req := httptest.NewRequest(tr.method, tr.path, body)
	if tr.token != "" {
		req.Header.Set("Authorization", "Bearer "+tr.token)
	}
	if tr.setup != nil {
		tr.setup(req)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func login(t *testing.T, router http.Handler) string {
	t.Helper()
	rr := serve(router, testRequest{
		method: http.MethodPost,
		path:   "/api/users/login",
		setup:  func(r *http.Request) { r.SetBasicAuth("admin", "password") },
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var token models.Token
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &token))
	require.NotEmpty(t, token.Value)
	return token.Value
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
