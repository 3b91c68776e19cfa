package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
)

// HierarchyService 汇报关系门面；一个员工只有一个直属上级
type HierarchyService struct {
	repo   repository.HierarchyRepository
	logger *zap.Logger
}

func NewHierarchyService(repo repository.HierarchyRepository, logger *zap.Logger) *HierarchyService {
	return &HierarchyService{repo: repo, logger: logger}
}

func (s *HierarchyService) List(ctx context.Context) ([]domain.HierarchyRelation, error) {
	return s.repo.List(ctx)
}

func (s *HierarchyService) Create(ctx context.Context, employeeID, reportsTo string) (*domain.HierarchyRelation, error) {
	if employeeID == "" || reportsTo == "" {
		return nil, fmt.Errorf("hierarchy employeeId and reportsTo are required: %w", domain.ErrInvalid)
	}
	if employeeID == reportsTo {
		return nil, fmt.Errorf("an employee cannot report to themselves: %w", domain.ErrInvalid)
	}
	rel, err := s.repo.Create(ctx, employeeID, reportsTo)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Hierarchy relation saved",
		zap.String("employee_id", rel.EmployeeID),
		zap.String("reports_to", rel.ReportsTo),
	)
	return rel, nil
}

func (s *HierarchyService) Delete(ctx context.Context, employeeID string) error {
	if err := s.repo.Delete(ctx, employeeID); err != nil {
		return err
	}
	s.logger.Info("Hierarchy relation removed", zap.String("employee_id", employeeID))
	return nil
}

// ClearAll drops every relation and reports how many were removed.
func (s *HierarchyService) ClearAll(ctx context.Context) (int, error) {
	n, err := s.repo.ClearAll(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Hierarchy cleared", zap.Int("removed", n))
	return n, nil
}
