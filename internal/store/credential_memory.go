package store

import (
	"context"
	"sync"
)

// memoryCredentialStore holds the token for the lifetime of the process.
type memoryCredentialStore struct {
	mu    sync.RWMutex
	token *string
}

// NewMemoryCredentialStore returns a process-local [CredentialStore].
func NewMemoryCredentialStore() CredentialStore {
	return &memoryCredentialStore{}
}

func (s *memoryCredentialStore) Load(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return "", ErrCredentialNotFound
	}
	return *s.token, nil
}

func (s *memoryCredentialStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = &token
	return nil
}

func (s *memoryCredentialStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
	return nil
}
