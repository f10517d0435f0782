// Package session owns the login state of the client. It wraps the
// credential store and publishes authenticated-state transitions.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/store"
)

// ErrEmptyToken is returned by SetToken for an empty token.
var ErrEmptyToken = errors.New("empty bearer token")

// Dispatcher runs notification callbacks on one consistent execution
// context. Submit must not block: it is called while a transition is in
// progress, and callbacks may start another one. [workers.SerialQueue]
// satisfies it.
type Dispatcher interface {
	Submit(task func()) bool
}

// Manager is the single source of truth for whether the user is logged in.
// It never caches the token itself; every read goes to the store.
type Manager struct {
	store      store.CredentialStore
	dispatcher Dispatcher
	logger     *logger.Logger

	authenticated atomic.Bool

	// transitions serialises set/clear so notifications leave in the same
	// order the state changed.
	transitions sync.Mutex

	subMu       sync.Mutex
	subscribers map[uint64]func(bool)
	nextSubID   uint64
}

// NewManager builds a Manager and seeds the authenticated state by probing
// credentials once.
func NewManager(ctx context.Context, credentials store.CredentialStore, dispatcher Dispatcher, log *logger.Logger) *Manager {
	m := &Manager{
		store:       credentials,
		dispatcher:  dispatcher,
		logger:      log,
		subscribers: make(map[uint64]func(bool)),
	}

	_, ok := m.CurrentToken(ctx)
	m.authenticated.Store(ok)

	return m
}

// CurrentToken returns the stored bearer token. A store failure is logged
// and reported as no token.
func (m *Manager) CurrentToken(ctx context.Context) (string, bool) {
	token, err := m.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrCredentialNotFound) {
			m.logger.Warn().Err(err).Msg("failed to read stored credential")
		}
		return "", false
	}
	return token, true
}

// SetToken persists token and marks the session authenticated.
func (m *Manager) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	m.transitions.Lock()
	defer m.transitions.Unlock()

	if err := m.store.Save(ctx, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	m.transition(true)
	return nil
}

// ClearSession deletes the token and marks the session unauthenticated. It
// is idempotent and safe to call from concurrent requests that all observed
// the same 401. When the store fails to delete, the state follows whatever
// the store still holds.
func (m *Manager) ClearSession(ctx context.Context) error {
	m.transitions.Lock()
	defer m.transitions.Unlock()

	if err := m.store.Delete(ctx); err != nil {
		_, ok := m.CurrentToken(ctx)
		m.transition(ok)
		return fmt.Errorf("failed to delete token: %w", err)
	}

	m.transition(false)
	return nil
}

// IsAuthenticated reports the current session state.
func (m *Manager) IsAuthenticated() bool {
	return m.authenticated.Load()
}

// Subscribe registers fn to be called on the dispatcher with the new state
// after every transition. The returned function unregisters fn.
func (m *Manager) Subscribe(fn func(authenticated bool)) (unsubscribe func()) {
	m.subMu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subMu.Lock()
			delete(m.subscribers, id)
			m.subMu.Unlock()
		})
	}
}

// transition must be called with m.transitions held.
func (m *Manager) transition(authenticated bool) {
	if m.authenticated.Swap(authenticated) == authenticated {
		return
	}

	m.logger.Debug().Bool("authenticated", authenticated).Msg("session state changed")

	m.subMu.Lock()
	subs := make([]func(bool), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.subMu.Unlock()

	if len(subs) == 0 {
		return
	}

	if !m.dispatcher.Submit(func() {
		for _, fn := range subs {
			fn(authenticated)
		}
	}) {
		m.logger.Warn().Msg("session notification dropped: dispatcher stopped")
	}
}
