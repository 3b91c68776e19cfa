package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

func TestTodoStore_LoadEmpty(t *testing.T) {
	s := NewTodoStore(NewMemoryKV())

	items, err := s.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTodoStore_RoundTrip(t *testing.T) {
	s := NewTodoStore(NewMemoryKV())
	ctx := context.Background()

	in := []domain.TodoItem{
		{ID: 1, Text: "Review monthly reports", Completed: false},
		{ID: 2, Text: "Schedule team meeting", Completed: true},
		{ID: 3, Text: "Update employee profiles", Completed: false},
	}
	require.NoError(t, s.Save(ctx, "u1", in))

	out, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTodoStore_PerUserIsolation(t *testing.T) {
	s := NewTodoStore(NewMemoryKV())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "u1", []domain.TodoItem{{ID: 1, Text: "a"}}))
	require.NoError(t, s.Save(ctx, "u2", []domain.TodoItem{{ID: 2, Text: "b"}}))

	u1, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, u1, 1)
	assert.Equal(t, "a", u1[0].Text)
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, error) { return "", ErrMiss }
func (failingKV) Set(context.Context, string, string, time.Duration) error {
	return errors.New("quota exceeded")
}
func (failingKV) ScanKeys(context.Context, string) ([]string, error) { return nil, nil }

func TestTodoStore_SaveFailureIsStorageWriteError(t *testing.T) {
	s := NewTodoStore(failingKV{})

	err := s.Save(context.Background(), "u1", []domain.TodoItem{{ID: 1, Text: "a"}})
	var swe *domain.StorageWriteError
	require.ErrorAs(t, err, &swe)
	assert.Equal(t, "portal:todos:u1", swe.Key)
}
