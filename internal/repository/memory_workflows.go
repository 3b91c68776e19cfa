package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

type MemoryWorkflowsRepo struct {
	mu    sync.RWMutex
	items map[string]domain.Workflow
}

func NewMemoryWorkflowsRepo() *MemoryWorkflowsRepo {
	return &MemoryWorkflowsRepo{items: map[string]domain.Workflow{}}
}

var _ WorkflowsRepository = (*MemoryWorkflowsRepo)(nil)

func (r *MemoryWorkflowsRepo) List(_ context.Context) ([]domain.Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Workflow, 0, len(r.items))
	for _, w := range r.items {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryWorkflowsRepo) Create(_ context.Context, w domain.Workflow) (*domain.Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w.ID = uuid.NewString()
	if w.Category == "" {
		w.Category = "general"
	}
	if w.Status == "" {
		w.Status = "active"
	}
	if w.CreatedBy == "" {
		w.CreatedBy = "Administrator"
	}
	for i := range w.Steps {
		if w.Steps[i].ID == "" {
			w.Steps[i].ID = uuid.NewString()
		}
		if w.Steps[i].Status == "" {
			w.Steps[i].Status = "pending"
		}
	}
	sort.Slice(w.Steps, func(i, j int) bool { return w.Steps[i].Order < w.Steps[j].Order })
	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	r.items[w.ID] = w
	return &w, nil
}

func (r *MemoryWorkflowsRepo) Update(_ context.Context, id string, upd domain.WorkflowUpdate) (*domain.Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		w.Name = *upd.Name
	}
	if upd.Description != nil {
		w.Description = *upd.Description
	}
	if upd.Category != nil {
		w.Category = *upd.Category
	}
	if upd.Status != nil {
		w.Status = *upd.Status
	}
	if upd.Steps != nil {
		w.Steps = *upd.Steps
		sort.Slice(w.Steps, func(i, j int) bool { return w.Steps[i].Order < w.Steps[j].Order })
	}
	w.UpdatedAt = time.Now().UTC()
	r.items[id] = w
	return &w, nil
}
