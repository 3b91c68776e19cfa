package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

type MemoryPoliciesRepo struct {
	mu    sync.RWMutex
	items map[string]domain.Policy
}

func NewMemoryPoliciesRepo() *MemoryPoliciesRepo {
	return &MemoryPoliciesRepo{items: map[string]domain.Policy{}}
}

var _ PoliciesRepository = (*MemoryPoliciesRepo)(nil)

func (r *MemoryPoliciesRepo) List(_ context.Context) ([]domain.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Policy, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryPoliciesRepo) Create(_ context.Context, p domain.Policy) (*domain.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	if p.Category == "" {
		p.Category = "general"
	}
	if p.Version == "" {
		p.Version = "1.0"
	}
	if p.Author == "" {
		p.Author = "Administrator"
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.items[p.ID] = p
	return &p, nil
}

func (r *MemoryPoliciesRepo) Update(_ context.Context, id string, upd domain.PolicyUpdate) (*domain.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.EffectiveDate != nil {
		p.EffectiveDate = upd.EffectiveDate
	}
	if upd.Version != nil {
		p.Version = *upd.Version
	}
	p.UpdatedAt = time.Now().UTC()
	r.items[id] = p
	return &p, nil
}

func (r *MemoryPoliciesRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
