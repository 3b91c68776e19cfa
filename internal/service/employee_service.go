package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/images"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
)

// EmployeeService 员工目录门面：上游目录 + 本地头像覆盖合并
type EmployeeService struct {
	repo     repository.EmployeesRepository
	images   *images.Resolver
	logger   *zap.Logger
	workbook string // HR workbook path for Refresh

	// serializes overlapping image updates per employee id
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewEmployeeService(repo repository.EmployeesRepository, resolver *images.Resolver, workbook string, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		images:   resolver,
		logger:   logger,
		workbook: workbook,
		locks:    map[string]*sync.Mutex{},
	}
}

// lockFor returns the per-employee mutex, creating it on first use. Locks
// are never removed; the id space is the directory, which is small.
func (s *EmployeeService) lockFor(employeeID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.locks[employeeID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[employeeID] = mu
	}
	return mu
}

// List returns the upstream directory with stored overrides overlaid.
// Upstream order is preserved; records without an override are untouched.
func (s *EmployeeService) List(ctx context.Context, filters repository.EmployeeFilters) ([]domain.Employee, error) {
	employees, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	overrides, err := s.images.ResolveAll(ctx)
	if err != nil {
		// overlay is best-effort: the directory must still render
		s.logger.Warn("Failed to resolve image overrides", zap.Error(err))
		return employees, nil
	}
	for i := range employees {
		if ref, ok := overrides[employees[i].ID]; ok {
			employees[i].ProfileImage = ref
		}
	}
	return employees, nil
}

// Get returns one employee with any stored override overlaid.
func (s *EmployeeService) Get(ctx context.Context, employeeID string) (*domain.Employee, error) {
	e, err := s.repo.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	overrides, err := s.images.ResolveAll(ctx)
	if err != nil {
		s.logger.Warn("Failed to resolve image overrides", zap.Error(err))
		return e, nil
	}
	if ref, ok := overrides[e.ID]; ok {
		e.ProfileImage = ref
	}
	return e, nil
}

// NewJoinees returns employees who joined within the last month, newest
// first, capped at limit.
func (s *EmployeeService) NewJoinees(ctx context.Context, limit int) ([]domain.Employee, error) {
	all, err := s.List(ctx, repository.EmployeeFilters{})
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().AddDate(0, -1, 0)
	var recent []domain.Employee
	for _, e := range all {
		if e.JoinedAfter(cutoff) {
			recent = append(recent, e)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].DateOfJoining > recent[j].DateOfJoining
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

// UpdateImage applies an image change for one employee. Inline data URIs
// are decoded and stored locally first, then the reference is propagated
// upstream; plain references skip local storage. The local override is kept
// even when propagation fails (optimistic write): the caller gets an
// UpstreamSyncError and can Reconcile later.
func (s *EmployeeService) UpdateImage(ctx context.Context, employeeID string, imageData string) (*domain.Employee, error) {
	mu := s.lockFor(employeeID)
	mu.Lock()
	defer mu.Unlock()

	ref := imageData
	if images.IsDataURI(imageData) {
		saved, err := s.images.SaveFromDataURI(ctx, employeeID, imageData)
		if err != nil {
			return nil, err
		}
		ref = saved
	}
	return s.propagate(ctx, employeeID, ref)
}

// UploadImage is the raw-binary variant: no decode step.
func (s *EmployeeService) UploadImage(ctx context.Context, employeeID string, data []byte, contentType string) (*domain.Employee, error) {
	mu := s.lockFor(employeeID)
	mu.Lock()
	defer mu.Unlock()

	ref, err := s.images.Save(ctx, employeeID, data, contentType)
	if err != nil {
		return nil, err
	}
	return s.propagate(ctx, employeeID, ref)
}

func (s *EmployeeService) propagate(ctx context.Context, employeeID, ref string) (*domain.Employee, error) {
	e, err := s.repo.UpdateImage(ctx, employeeID, ref)
	if err != nil {
		s.logger.Warn("Image override saved but upstream propagation failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, &domain.UpstreamSyncError{EmployeeID: employeeID, Err: err}
	}
	e.ProfileImage = ref
	return e, nil
}

// Drift is one employee whose local override disagrees with the upstream
// profileImage value.
type Drift struct {
	EmployeeID string `json:"employee_id"`
	Override   string `json:"override"`
	Upstream   string `json:"upstream"`
}

// Reconcile reports override/upstream drift without repairing it. Overrides
// for ids unknown upstream are reported with an empty Upstream value.
func (s *EmployeeService) Reconcile(ctx context.Context) ([]Drift, error) {
	overrides, err := s.images.ResolveAll(ctx)
	if err != nil {
		return nil, err
	}
	upstream, err := s.repo.List(ctx, repository.EmployeeFilters{})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]string, len(upstream))
	for _, e := range upstream {
		byID[e.ID] = e.ProfileImage
	}
	var out []Drift
	for id, ref := range overrides {
		if byID[id] != ref {
			out = append(out, Drift{EmployeeID: id, Override: ref, Upstream: byID[id]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

// Refresh reloads the directory from the HR workbook and replaces the
// upstream collection.
func (s *EmployeeService) Refresh(ctx context.Context) (int, error) {
	employees, err := repository.ParseWorkbook(s.workbook)
	if err != nil {
		return 0, fmt.Errorf("refresh directory: %w", err)
	}
	n, err := s.repo.Replace(ctx, employees)
	if err != nil {
		return 0, fmt.Errorf("refresh directory: %w", err)
	}
	s.logger.Info("Directory refreshed from workbook",
		zap.String("workbook", s.workbook),
		zap.Int("employees", n),
	)
	return n, nil
}

func (s *EmployeeService) Departments(ctx context.Context) ([]string, error) {
	return s.repo.Departments(ctx)
}

func (s *EmployeeService) Locations(ctx context.Context) ([]string, error) {
	return s.repo.Locations(ctx)
}

// Stats summarizes the directory for the dashboard tiles.
func (s *EmployeeService) Stats(ctx context.Context) (*domain.DirectoryStats, error) {
	all, err := s.repo.List(ctx, repository.EmployeeFilters{})
	if err != nil {
		return nil, err
	}
	depts, err := s.repo.Departments(ctx)
	if err != nil {
		return nil, err
	}
	locs, err := s.repo.Locations(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.DirectoryStats{
		Employees:   len(all),
		Departments: len(depts),
		Locations:   len(locs),
	}, nil
}
