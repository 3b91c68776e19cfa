package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
)

// TaskService 任务门面
type TaskService struct {
	repo   repository.TasksRepository
	logger *zap.Logger
}

func NewTaskService(repo repository.TasksRepository, logger *zap.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Create(ctx context.Context, t domain.Task) (*domain.Task, error) {
	if t.Title == "" {
		return nil, fmt.Errorf("task title is required: %w", domain.ErrInvalid)
	}
	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Task created",
		zap.String("task_id", created.ID),
		zap.String("assigned_to", created.AssignedTo),
	)
	return created, nil
}

func (s *TaskService) Update(ctx context.Context, id string, upd domain.TaskUpdate) (*domain.Task, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Task deleted", zap.String("task_id", id))
	return nil
}
