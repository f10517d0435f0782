package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/mock"
	"github.com/MKhiriev/til-client/internal/store"
	"github.com/MKhiriev/til-client/internal/workers"
)

func newQueue(t *testing.T) *workers.SerialQueue {
	t.Helper()
	q := workers.NewSerialQueue(8, logger.Nop())
	q.Run()
	t.Cleanup(q.Stop)
	return q
}

func TestNewManager_SeedsFromStore(t *testing.T) {
	ctx := context.Background()

	empty := store.NewMemoryCredentialStore()
	assert.False(t, NewManager(ctx, empty, newQueue(t), logger.Nop()).IsAuthenticated())

	filled := store.NewMemoryCredentialStore()
	require.NoError(t, filled.Save(ctx, "tok"))
	assert.True(t, NewManager(ctx, filled, newQueue(t), logger.Nop()).IsAuthenticated())
}

func TestManager_SetTokenAndCurrentToken(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, store.NewMemoryCredentialStore(), newQueue(t), logger.Nop())

	_, ok := m.CurrentToken(ctx)
	assert.False(t, ok)

	require.NoError(t, m.SetToken(ctx, "tok123"))
	assert.True(t, m.IsAuthenticated())

	token, ok := m.CurrentToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "tok123", token)

	require.NoError(t, m.SetToken(ctx, "tok456"))
	token, _ = m.CurrentToken(ctx)
	assert.Equal(t, "tok456", token)
}

func TestManager_SetTokenRejectsEmpty(t *testing.T) {
	m := NewManager(context.Background(), store.NewMemoryCredentialStore(), newQueue(t), logger.Nop())

	assert.ErrorIs(t, m.SetToken(context.Background(), ""), ErrEmptyToken)
	assert.False(t, m.IsAuthenticated())
}

func TestManager_ClearSessionIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, store.NewMemoryCredentialStore(), newQueue(t), logger.Nop())
	require.NoError(t, m.SetToken(ctx, "tok"))

	require.NoError(t, m.ClearSession(ctx))
	assert.False(t, m.IsAuthenticated())

	require.NoError(t, m.ClearSession(ctx))
	assert.False(t, m.IsAuthenticated())

	_, ok := m.CurrentToken(ctx)
	assert.False(t, ok)
}

func TestManager_ConcurrentClearSession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(ctx, store.NewMemoryCredentialStore(), newQueue(t), logger.Nop())
	require.NoError(t, m.SetToken(ctx, "tok"))

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.ClearSession(ctx))
		}()
	}
	wg.Wait()

	assert.False(t, m.IsAuthenticated())
}

func TestManager_NotificationsOnQueueInOrder(t *testing.T) {
	ctx := context.Background()
	q := newQueue(t)
	m := NewManager(ctx, store.NewMemoryCredentialStore(), q, logger.Nop())

	var got []bool
	unsubscribe := m.Subscribe(func(authenticated bool) { got = append(got, authenticated) })

	require.NoError(t, m.SetToken(ctx, "a"))
	require.NoError(t, m.SetToken(ctx, "b"))
	require.NoError(t, m.ClearSession(ctx))
	require.NoError(t, m.ClearSession(ctx))
	require.NoError(t, m.SetToken(ctx, "c"))
	q.Sync()

	assert.Equal(t, []bool{true, false, true}, got)

	unsubscribe()
	unsubscribe()
	require.NoError(t, m.ClearSession(ctx))
	q.Sync()
	assert.Len(t, got, 3)
}

func TestManager_StoreLoadErrorTreatedAsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialStore(ctrl)
	credentials.EXPECT().Load(gomock.Any()).Return("", errors.New("disk on fire")).Times(2)

	m := NewManager(context.Background(), credentials, newQueue(t), logger.Nop())
	assert.False(t, m.IsAuthenticated())

	_, ok := m.CurrentToken(context.Background())
	assert.False(t, ok)
}

func TestManager_SetTokenSaveErrorKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialStore(ctrl)
	credentials.EXPECT().Load(gomock.Any()).Return("", store.ErrCredentialNotFound)
	credentials.EXPECT().Save(gomock.Any(), "tok").Return(assert.AnError)

	m := NewManager(context.Background(), credentials, newQueue(t), logger.Nop())

	err := m.SetToken(context.Background(), "tok")
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, m.IsAuthenticated())
}

func TestManager_ClearSessionDeleteErrorKeepsStoredState(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialStore(ctrl)
	gomock.InOrder(
		credentials.EXPECT().Load(gomock.Any()).Return("tok", nil),
		credentials.EXPECT().Delete(gomock.Any()).Return(assert.AnError),
		credentials.EXPECT().Load(gomock.Any()).Return("tok", nil),
	)

	m := NewManager(context.Background(), credentials, newQueue(t), logger.Nop())
	require.True(t, m.IsAuthenticated())

	err := m.ClearSession(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, m.IsAuthenticated())
}

func TestManager_ClearSessionDeleteErrorWithTokenGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialStore(ctrl)
	gomock.InOrder(
		credentials.EXPECT().Load(gomock.Any()).Return("tok", nil),
		credentials.EXPECT().Delete(gomock.Any()).Return(assert.AnError),
		credentials.EXPECT().Load(gomock.Any()).Return("", store.ErrCredentialNotFound),
	)

	m := NewManager(context.Background(), credentials, newQueue(t), logger.Nop())

	err := m.ClearSession(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, m.IsAuthenticated())
}

func TestManager_SubscriberMayChangeSession(t *testing.T) {
	ctx := context.Background()
	q := workers.NewSerialQueue(0, logger.Nop())
	q.Run()
	t.Cleanup(q.Stop)
	m := NewManager(ctx, store.NewMemoryCredentialStore(), q, logger.Nop())

	relogged := make(chan struct{}, 8)
	m.Subscribe(func(authenticated bool) {
		if !authenticated {
			assert.NoError(t, m.SetToken(ctx, "fresh"))
			relogged <- struct{}{}
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, m.SetToken(ctx, "a"))
		assert.NoError(t, m.ClearSession(ctx))
		assert.NoError(t, m.ClearSession(ctx))
		assert.NoError(t, m.SetToken(ctx, "b"))
		assert.NoError(t, m.ClearSession(ctx))
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("session transitions did not complete")
	}
	q.Sync()
	assert.GreaterOrEqual(t, len(relogged), 2)

	token, ok := m.CurrentToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "fresh", token)
	assert.True(t, m.IsAuthenticated())
}
