package service

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/til-client/internal/adapter"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "nil", err: nil, wantErr: nil},
		{name: "bad credentials", err: adapter.ErrBadCredentials, wantErr: ErrLoginFailed},
		{name: "bad assertion", err: adapter.ErrBadAssertion, wantErr: ErrLoginFailed},
		{name: "missing identifier", err: adapter.ErrMissingIdentifier, wantErr: ErrInvalidInput},
		{name: "not found", err: &adapter.ResponseError{StatusCode: http.StatusNotFound}, wantErr: ErrNotFound},
		{name: "conflict", err: &adapter.ResponseError{StatusCode: http.StatusConflict}, wantErr: ErrConflict},
		{name: "bad request", err: fmt.Errorf("wrapped: %w", &adapter.ResponseError{StatusCode: http.StatusBadRequest}), wantErr: ErrInvalidInput},
		{name: "server error passes through", err: &adapter.ResponseError{StatusCode: http.StatusBadGateway}, wantErr: adapter.ErrResponse},
		{name: "auth required passes through", err: adapter.ErrAuthRequired, wantErr: adapter.ErrAuthRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}
