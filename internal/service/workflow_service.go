package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
)

// WorkflowService 流程门面；步骤始终按 Order 返回
type WorkflowService struct {
	repo   repository.WorkflowsRepository
	logger *zap.Logger
}

func NewWorkflowService(repo repository.WorkflowsRepository, logger *zap.Logger) *WorkflowService {
	return &WorkflowService{repo: repo, logger: logger}
}

func (s *WorkflowService) List(ctx context.Context) ([]domain.Workflow, error) {
	flows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range flows {
		sortSteps(flows[i].Steps)
	}
	return flows, nil
}

func (s *WorkflowService) Create(ctx context.Context, w domain.Workflow) (*domain.Workflow, error) {
	if w.Name == "" {
		return nil, fmt.Errorf("workflow name is required: %w", domain.ErrInvalid)
	}
	sortSteps(w.Steps)
	created, err := s.repo.Create(ctx, w)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Workflow created",
		zap.String("workflow_id", created.ID),
		zap.Int("steps", len(created.Steps)),
	)
	return created, nil
}

func (s *WorkflowService) Update(ctx context.Context, id string, upd domain.WorkflowUpdate) (*domain.Workflow, error) {
	if upd.Steps != nil {
		sortSteps(*upd.Steps)
	}
	return s.repo.Update(ctx, id, upd)
}

func sortSteps(steps []domain.WorkflowStep) {
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })
}
