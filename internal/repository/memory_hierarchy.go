package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

type MemoryHierarchyRepo struct {
	mu sync.RWMutex
	// employeeID -> relation; one manager per employee, last write wins
	items map[string]domain.HierarchyRelation
}

func NewMemoryHierarchyRepo() *MemoryHierarchyRepo {
	return &MemoryHierarchyRepo{items: map[string]domain.HierarchyRelation{}}
}

var _ HierarchyRepository = (*MemoryHierarchyRepo)(nil)

func (r *MemoryHierarchyRepo) List(_ context.Context) ([]domain.HierarchyRelation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.HierarchyRelation, 0, len(r.items))
	for _, rel := range r.items {
		out = append(out, rel)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (r *MemoryHierarchyRepo) Create(_ context.Context, employeeID, reportsTo string) (*domain.HierarchyRelation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	rel, ok := r.items[employeeID]
	if ok {
		rel.ReportsTo = reportsTo
		rel.UpdatedAt = now
	} else {
		rel = domain.HierarchyRelation{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			ReportsTo:  reportsTo,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}
	r.items[employeeID] = rel
	return &rel, nil
}

func (r *MemoryHierarchyRepo) Delete(_ context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[employeeID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, employeeID)
	return nil
}

func (r *MemoryHierarchyRepo) ClearAll(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.items)
	r.items = map[string]domain.HierarchyRelation{}
	return n, nil
}
