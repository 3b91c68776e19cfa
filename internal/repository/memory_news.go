package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

type MemoryNewsRepo struct {
	mu    sync.RWMutex
	items map[string]domain.News
}

func NewMemoryNewsRepo() *MemoryNewsRepo {
	return &MemoryNewsRepo{items: map[string]domain.News{}}
}

var _ NewsRepository = (*MemoryNewsRepo)(nil)

func (r *MemoryNewsRepo) List(_ context.Context) ([]domain.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.News, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, n)
	}
	// newest first
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryNewsRepo) Create(_ context.Context, title, content, priority string) (*domain.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if priority == "" {
		priority = "normal"
	}
	now := time.Now().UTC()
	n := domain.News{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Priority:  priority,
		Author:    "Administrator",
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.items[n.ID] = n
	return &n, nil
}

func (r *MemoryNewsRepo) Update(_ context.Context, id string, upd domain.NewsUpdate) (*domain.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.Priority != nil {
		n.Priority = *upd.Priority
	}
	n.UpdatedAt = time.Now().UTC()
	r.items[id] = n
	return &n, nil
}

func (r *MemoryNewsRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
