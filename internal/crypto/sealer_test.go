package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testArgonParams keeps key derivation cheap in tests.
var testArgonParams = argonParams{time: 1, memory: 8, threads: 1, keyLen: 32}

func newTestSealer(t *testing.T, secret string) *Sealer {
	t.Helper()
	s, err := newSealer(secret, testArgonParams)
	require.NoError(t, err)
	return s
}

func TestNewSealer_EmptySecret(t *testing.T) {
	s, err := NewSealer("")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestSealer_RoundTrip(t *testing.T) {
	s := newTestSealer(t, "device-secret")

	sealed, err := s.Seal("tok123")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "tok123")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "tok123", opened)
}

func TestSealer_SealUsesFreshNonce(t *testing.T) {
	s := newTestSealer(t, "device-secret")

	a, err := s.Seal("same")
	require.NoError(t, err)
	b, err := s.Seal("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSealer_SameSecretOpensAcrossInstances(t *testing.T) {
	sealed, err := newTestSealer(t, "device-secret").Seal("tok")
	require.NoError(t, err)

	opened, err := newTestSealer(t, "device-secret").Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "tok", opened)
}

func TestSealer_WrongSecret(t *testing.T) {
	sealed, err := newTestSealer(t, "right").Seal("tok")
	require.NoError(t, err)

	_, err = newTestSealer(t, "wrong").Open(sealed)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestSealer_OpenErrors(t *testing.T) {
	s := newTestSealer(t, "device-secret")

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "not base64", input: "%%%"},
		{name: "too short", input: base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), wantErr: ErrCiphertextTooShort},
		{name: "tampered", input: base64.StdEncoding.EncodeToString(make([]byte, 40)), wantErr: ErrDecryptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Open(tt.input)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
