package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/til-client/internal/crypto"
)

// fileCredentialStore keeps sealed tokens in a small JSON document, keyed
// the same way as the SQLite table.
type fileCredentialStore struct {
	path   string
	sealer crypto.TokenSealer
	key    string

	mu sync.RWMutex
}

type fileCredential struct {
	Secret    string    `json:"secret"`
	UpdatedAt time.Time `json:"updated_at"`
}

type filePersistedState struct {
	Credentials map[string]fileCredential `json:"credentials"`
}

// NewFileCredentialStore returns a [CredentialStore] persisting to the JSON
// file at path with 0600 permissions.
func NewFileCredentialStore(path string, sealer crypto.TokenSealer) CredentialStore {
	return &fileCredentialStore{
		path:   path,
		sealer: sealer,
		key:    CredentialKey,
	}
}

func (s *fileCredentialStore) Load(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.load()
	if err != nil {
		return "", err
	}

	cred, ok := st.Credentials[s.key]
	if !ok {
		return "", ErrCredentialNotFound
	}

	token, err := s.sealer.Open(cred.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to open stored credential: %w", err)
	}
	return token, nil
}

func (s *fileCredentialStore) Save(_ context.Context, token string) error {
	sealed, err := s.sealer.Seal(token)
	if err != nil {
		return fmt.Errorf("failed to seal credential: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	st.Credentials[s.key] = fileCredential{Secret: sealed, UpdatedAt: time.Now().UTC()}

	return s.persist(st)
}

func (s *fileCredentialStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := st.Credentials[s.key]; !ok {
		return nil
	}
	delete(st.Credentials, s.key)

	return s.persist(st)
}

func (s *fileCredentialStore) load() (filePersistedState, error) {
	st := filePersistedState{Credentials: make(map[string]fileCredential)}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("read credential file: %w", err)
	}

	if err = json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("decode credential file: %w", err)
	}
	if st.Credentials == nil {
		st.Credentials = make(map[string]fileCredential)
	}

	return st, nil
}

func (s *fileCredentialStore) persist(st filePersistedState) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create credential dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential file: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}

	return nil
}
