package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/store"
)

// TodoService 个人待办：内存列表是会话权威，KV 持久化尽力而为
// Each user's list is loaded from the store once, then every mutation
// updates the in-memory list and rewrites the whole stored value. A failed
// persist is logged and swallowed; the session keeps the mutated list, so a
// later mutation can still flush the full state.
type TodoService struct {
	store  *store.TodoStore
	logger *zap.Logger

	mu     sync.Mutex
	lists  map[string][]domain.TodoItem
	lastID int64
}

func NewTodoService(ts *store.TodoStore, logger *zap.Logger) *TodoService {
	return &TodoService{
		store:  ts,
		logger: logger,
		lists:  map[string][]domain.TodoItem{},
	}
}

// nextID is time-derived (milliseconds) with a monotonic bump so two adds
// in the same millisecond still get distinct, increasing ids.
func (s *TodoService) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// load returns the session list, reading the store on first access.
// Callers hold s.mu.
func (s *TodoService) load(ctx context.Context, userID string) ([]domain.TodoItem, error) {
	if items, ok := s.lists[userID]; ok {
		return items, nil
	}
	items, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.lists[userID] = items
	return items, nil
}

func (s *TodoService) List(ctx context.Context, userID string) ([]domain.TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TodoItem, len(items))
	copy(out, items)
	return out, nil
}

func (s *TodoService) Add(ctx context.Context, userID, text string) (*domain.TodoItem, error) {
	if text == "" {
		return nil, fmt.Errorf("todo text is required: %w", domain.ErrInvalid)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	item := domain.TodoItem{ID: s.nextID(), Text: text, Completed: false}
	items = append(items, item)
	s.commit(ctx, userID, items)
	return &item, nil
}

// Toggle flips the completed flag and returns the updated item.
func (s *TodoService) Toggle(ctx context.Context, userID string, id int64) (*domain.TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Completed = !items[i].Completed
			s.commit(ctx, userID, items)
			cp := items[i]
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *TodoService) Remove(ctx context.Context, userID string, id int64) ([]domain.TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TodoItem, 0, len(items))
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	s.commit(ctx, userID, out)
	return out, nil
}

// commit updates the session list and writes the whole value back;
// StorageWriteError is non-fatal. Callers hold s.mu.
func (s *TodoService) commit(ctx context.Context, userID string, items []domain.TodoItem) {
	s.lists[userID] = items
	if err := s.store.Save(ctx, userID, items); err != nil {
		s.logger.Warn("Failed to persist todo list, keeping session state",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}
