package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

type MemoryHelpRepo struct {
	mu    sync.RWMutex
	items map[string]domain.HelpRequest
}

func NewMemoryHelpRepo() *MemoryHelpRepo {
	return &MemoryHelpRepo{items: map[string]domain.HelpRequest{}}
}

var _ HelpRepository = (*MemoryHelpRepo)(nil)

func (r *MemoryHelpRepo) List(_ context.Context) ([]domain.HelpRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.HelpRequest, 0, len(r.items))
	for _, h := range r.items {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryHelpRepo) Create(_ context.Context, title, message, priority, author string) (*domain.HelpRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if priority == "" {
		priority = "normal"
	}
	if author == "" {
		author = "User"
	}
	now := time.Now().UTC()
	h := domain.HelpRequest{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Priority:  priority,
		Status:    "open",
		Author:    author,
		Replies:   []domain.HelpReply{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.items[h.ID] = h
	return &h, nil
}

func (r *MemoryHelpRepo) UpdateStatus(_ context.Context, id string, status string) (*domain.HelpRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	h.Status = status
	h.UpdatedAt = time.Now().UTC()
	r.items[id] = h
	return &h, nil
}

func (r *MemoryHelpRepo) AddReply(_ context.Context, id string, message, author string) (*domain.HelpRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if author == "" {
		author = "Administrator"
	}
	h.Replies = append(h.Replies, domain.HelpReply{
		ID:        uuid.NewString(),
		Message:   message,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	})
	h.UpdatedAt = time.Now().UTC()
	r.items[id] = h
	return &h, nil
}

func (r *MemoryHelpRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
