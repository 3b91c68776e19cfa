package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

// MemoryEmployeesRepo serves the directory from an in-process slice.
// Insertion order is the upstream order and is preserved by List.
type MemoryEmployeesRepo struct {
	mu        sync.RWMutex
	employees []domain.Employee
}

func NewMemoryEmployeesRepo(seed []domain.Employee) *MemoryEmployeesRepo {
	r := &MemoryEmployeesRepo{}
	r.employees = append(r.employees, seed...)
	return r
}

var _ EmployeesRepository = (*MemoryEmployeesRepo)(nil)

func matchesFilters(e domain.Employee, f EmployeeFilters) bool {
	if f.Department != "" && e.Department != f.Department {
		return false
	}
	if f.Location != "" && e.Location != f.Location {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.ID), q) &&
			!strings.Contains(strings.ToLower(e.Email), q) &&
			!strings.Contains(strings.ToLower(e.Department), q) {
			return false
		}
	}
	return true
}

func (r *MemoryEmployeesRepo) List(_ context.Context, filters EmployeeFilters) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if matchesFilters(e, filters) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryEmployeesRepo) Get(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.ID == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryEmployeesRepo) UpdateImage(_ context.Context, id string, imageRef string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == id {
			r.employees[i].ProfileImage = imageRef
			r.employees[i].LastUpdated = time.Now().UTC()
			cp := r.employees[i]
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryEmployeesRepo) Replace(_ context.Context, employees []domain.Employee) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.employees = append(r.employees[:0:0], employees...)
	return len(r.employees), nil
}

func (r *MemoryEmployeesRepo) Departments(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return distinct(r.employees, func(e domain.Employee) string { return e.Department }), nil
}

func (r *MemoryEmployeesRepo) Locations(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return distinct(r.employees, func(e domain.Employee) string { return e.Location }), nil
}

func distinct(employees []domain.Employee, field func(domain.Employee) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, e := range employees {
		v := field(e)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
