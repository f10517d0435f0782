package crypto

import "errors"

var (
	// ErrEmptySecret is returned by NewSealer when no device secret is given.
	ErrEmptySecret = errors.New("device secret is empty")
	// ErrCiphertextTooShort is returned by Open when the blob cannot even hold
	// the GCM nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrDecryptionFailed is returned by Open on an authentication-tag
	// mismatch, which almost always means a different device secret.
	ErrDecryptionFailed = errors.New("decryption failed")
)
