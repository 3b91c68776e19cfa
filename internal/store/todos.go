package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

const todoKeyPrefix = "portal:todos:"

// TodoStore persists each user's to-do list as one JSON value. Every
// mutation rewrites the whole list; there are no partial writes.
type TodoStore struct {
	kv KV
}

func NewTodoStore(kv KV) *TodoStore {
	return &TodoStore{kv: kv}
}

func todoKey(userID string) string { return todoKeyPrefix + userID }

// Load returns the persisted list, or an empty list when nothing was saved.
func (s *TodoStore) Load(ctx context.Context, userID string) ([]domain.TodoItem, error) {
	raw, err := s.kv.Get(ctx, todoKey(userID))
	if err != nil {
		if errors.Is(err, ErrMiss) {
			return []domain.TodoItem{}, nil
		}
		return nil, fmt.Errorf("load todos: %w", err)
	}
	var items []domain.TodoItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	return items, nil
}

// Save replaces the stored list. A write failure is wrapped as
// StorageWriteError so callers can log and keep the in-memory list.
func (s *TodoStore) Save(ctx context.Context, userID string, items []domain.TodoItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode todos: %w", err)
	}
	if err := s.kv.Set(ctx, todoKey(userID), string(raw), 0); err != nil {
		return &domain.StorageWriteError{Key: todoKey(userID), Err: err}
	}
	return nil
}
