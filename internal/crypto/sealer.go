// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// sealerSalt domain-separates the sealing key from any other key derived
// from the same device secret.
var sealerSalt = []byte("til-client/credential-sealer/v1")

// Sealer is the AES-256-GCM implementation of [TokenSealer]. The key is
// derived once from the device secret with Argon2id and kept in memory.
type Sealer struct {
	gcm cipher.AEAD
}

// argonParams holds the Argon2id tuning parameters.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// defaultArgonParams follows the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
var defaultArgonParams = argonParams{
	time:    1,
	memory:  64 * 1024,
	threads: 4,
	keyLen:  32,
}

// NewSealer derives the sealing key from deviceSecret and returns a ready
// [Sealer]. Returns [ErrEmptySecret] if deviceSecret is empty.
func NewSealer(deviceSecret string) (*Sealer, error) {
	return newSealer(deviceSecret, defaultArgonParams)
}

func newSealer(deviceSecret string, p argonParams) (*Sealer, error) {
	if deviceSecret == "" {
		return nil, ErrEmptySecret
	}

	key := argon2.IDKey([]byte(deviceSecret), sealerSalt, p.time, p.memory, p.threads, p.keyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &Sealer{gcm: gcm}, nil
}

// Seal implements [TokenSealer]. A random nonce is prepended to the
// ciphertext: blob = nonce ‖ ciphertext.
func (s *Sealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := s.gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [TokenSealer].
func (s *Sealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := s.gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := s.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
