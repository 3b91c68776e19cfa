package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

type MemoryKnowledgeRepo struct {
	mu    sync.RWMutex
	items map[string]domain.Knowledge
}

func NewMemoryKnowledgeRepo() *MemoryKnowledgeRepo {
	return &MemoryKnowledgeRepo{items: map[string]domain.Knowledge{}}
}

var _ KnowledgeRepository = (*MemoryKnowledgeRepo)(nil)

func (r *MemoryKnowledgeRepo) List(_ context.Context) ([]domain.Knowledge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Knowledge, 0, len(r.items))
	for _, k := range r.items {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryKnowledgeRepo) Create(_ context.Context, k domain.Knowledge) (*domain.Knowledge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k.ID = uuid.NewString()
	if k.Category == "" {
		k.Category = "policy"
	}
	if k.Tags == nil {
		k.Tags = []string{}
	}
	if k.Author == "" {
		k.Author = "Administrator"
	}
	now := time.Now().UTC()
	k.CreatedAt = now
	k.UpdatedAt = now
	r.items[k.ID] = k
	return &k, nil
}

func (r *MemoryKnowledgeRepo) Update(_ context.Context, id string, upd domain.KnowledgeUpdate) (*domain.Knowledge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		k.Title = *upd.Title
	}
	if upd.Content != nil {
		k.Content = *upd.Content
	}
	if upd.Category != nil {
		k.Category = *upd.Category
	}
	if upd.Tags != nil {
		k.Tags = *upd.Tags
	}
	k.UpdatedAt = time.Now().UTC()
	r.items[id] = k
	return &k, nil
}

func (r *MemoryKnowledgeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
