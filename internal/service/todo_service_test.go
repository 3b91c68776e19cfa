package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/store"
)

func newTestTodoService() (*TodoService, *store.MemoryKV) {
	kv := store.NewMemoryKV()
	return NewTodoService(store.NewTodoStore(kv), zap.NewNop()), kv
}

func TestTodoServiceAddListRemove(t *testing.T) {
	svc, _ := newTestTodoService()
	ctx := context.Background()

	first, err := svc.Add(ctx, "u1", "buy coffee")
	require.NoError(t, err)
	second, err := svc.Add(ctx, "u1", "file expense report")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	items, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "buy coffee", items[0].Text)

	remaining, err := svc.Remove(ctx, "u1", first.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
}

func TestTodoServiceAddRejectsEmptyText(t *testing.T) {
	svc, _ := newTestTodoService()
	_, err := svc.Add(context.Background(), "u1", "")
	require.Error(t, err)
}

func TestTodoServiceToggleTwiceRoundTrips(t *testing.T) {
	svc, _ := newTestTodoService()
	ctx := context.Background()

	item, err := svc.Add(ctx, "u1", "review PR")
	require.NoError(t, err)
	require.False(t, item.Completed)

	once, err := svc.Toggle(ctx, "u1", item.ID)
	require.NoError(t, err)
	assert.True(t, once.Completed)

	twice, err := svc.Toggle(ctx, "u1", item.ID)
	require.NoError(t, err)
	assert.False(t, twice.Completed)
}

func TestTodoServiceUnknownIDs(t *testing.T) {
	svc, _ := newTestTodoService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "u1", 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Remove(ctx, "u1", 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTodoServicePerUserIsolation(t *testing.T) {
	svc, _ := newTestTodoService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "mine")
	require.NoError(t, err)

	items, err := svc.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTodoServiceReloadsFromStore(t *testing.T) {
	kv := store.NewMemoryKV()
	ts := store.NewTodoStore(kv)
	ctx := context.Background()

	first := NewTodoService(ts, zap.NewNop())
	added, err := first.Add(ctx, "u1", "persisted")
	require.NoError(t, err)

	// a fresh service over the same store sees the saved list
	second := NewTodoService(ts, zap.NewNop())
	items, err := second.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, added.ID, items[0].ID)
}

// brokenKV accepts nothing; used to prove the session list survives a
// failed persist.
type brokenKV struct{}

func (brokenKV) Get(ctx context.Context, key string) (string, error) {
	return "", store.ErrMiss
}

func (brokenKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("disk on fire")
}

func (brokenKV) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	return nil, nil
}

func TestTodoServiceKeepsSessionStateWhenPersistFails(t *testing.T) {
	svc := NewTodoService(store.NewTodoStore(brokenKV{}), zap.NewNop())
	ctx := context.Background()

	item, err := svc.Add(ctx, "u1", "still here")
	require.NoError(t, err, "a failed persist is not a failed mutation")

	items, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)

	toggled, err := svc.Toggle(ctx, "u1", item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
}
