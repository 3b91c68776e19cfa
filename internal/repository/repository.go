// Package repository owns the portal's upstream collections. Every façade
// call goes through one of these interfaces; nothing mutates ambient state.
// Memory implementations back local runs and tests; the employee directory
// can also be served from postgres when a DB is configured.
package repository

import (
	"context"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

// EmployeeFilters narrows List results. Semantics follow the HR source:
// Search matches name/id/email/department case-insensitively, Department
// and Location are exact.
type EmployeeFilters struct {
	Search     string
	Department string
	Location   string
}

type EmployeesRepository interface {
	List(ctx context.Context, filters EmployeeFilters) ([]domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	// UpdateImage sets the upstream profileImage reference and returns the
	// canonical post-mutation record. domain.ErrNotFound when id is absent.
	UpdateImage(ctx context.Context, id string, imageRef string) (*domain.Employee, error)
	// Replace swaps the whole collection (workbook refresh).
	Replace(ctx context.Context, employees []domain.Employee) (int, error)
	Departments(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
}

type NewsRepository interface {
	List(ctx context.Context) ([]domain.News, error)
	Create(ctx context.Context, title, content, priority string) (*domain.News, error)
	Update(ctx context.Context, id string, upd domain.NewsUpdate) (*domain.News, error)
	Delete(ctx context.Context, id string) error
}

type TasksRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, t domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id string, upd domain.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type KnowledgeRepository interface {
	List(ctx context.Context) ([]domain.Knowledge, error)
	Create(ctx context.Context, k domain.Knowledge) (*domain.Knowledge, error)
	Update(ctx context.Context, id string, upd domain.KnowledgeUpdate) (*domain.Knowledge, error)
	Delete(ctx context.Context, id string) error
}

type HelpRepository interface {
	List(ctx context.Context) ([]domain.HelpRequest, error)
	Create(ctx context.Context, title, message, priority, author string) (*domain.HelpRequest, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.HelpRequest, error)
	AddReply(ctx context.Context, id string, message, author string) (*domain.HelpRequest, error)
	Delete(ctx context.Context, id string) error
}

type PoliciesRepository interface {
	List(ctx context.Context) ([]domain.Policy, error)
	Create(ctx context.Context, p domain.Policy) (*domain.Policy, error)
	Update(ctx context.Context, id string, upd domain.PolicyUpdate) (*domain.Policy, error)
	Delete(ctx context.Context, id string) error
}

type WorkflowsRepository interface {
	List(ctx context.Context) ([]domain.Workflow, error)
	Create(ctx context.Context, w domain.Workflow) (*domain.Workflow, error)
	Update(ctx context.Context, id string, upd domain.WorkflowUpdate) (*domain.Workflow, error)
}

// AttendanceFilters narrows attendance queries; all fields optional.
type AttendanceFilters struct {
	EmployeeID string
	Date       string // YYYY-MM-DD
	Status     string
}

type AttendanceRepository interface {
	List(ctx context.Context, filters AttendanceFilters) ([]domain.AttendanceRecord, error)
	Create(ctx context.Context, rec domain.AttendanceRecord) (*domain.AttendanceRecord, error)
	Update(ctx context.Context, id string, upd domain.AttendanceUpdate) (*domain.AttendanceRecord, error)
}

type HierarchyRepository interface {
	List(ctx context.Context) ([]domain.HierarchyRelation, error)
	Create(ctx context.Context, employeeID, reportsTo string) (*domain.HierarchyRelation, error)
	// Delete removes the relation for the given employee id.
	Delete(ctx context.Context, employeeID string) error
	ClearAll(ctx context.Context) (int, error)
}
