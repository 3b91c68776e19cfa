package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
)

// KnowledgeService 知识库门面
type KnowledgeService struct {
	repo   repository.KnowledgeRepository
	logger *zap.Logger
}

func NewKnowledgeService(repo repository.KnowledgeRepository, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{repo: repo, logger: logger}
}

func (s *KnowledgeService) List(ctx context.Context) ([]domain.Knowledge, error) {
	return s.repo.List(ctx)
}

func (s *KnowledgeService) Create(ctx context.Context, k domain.Knowledge) (*domain.Knowledge, error) {
	if k.Title == "" || k.Content == "" {
		return nil, fmt.Errorf("knowledge title and content are required: %w", domain.ErrInvalid)
	}
	created, err := s.repo.Create(ctx, k)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Knowledge article created",
		zap.String("knowledge_id", created.ID),
		zap.String("category", created.Category),
	)
	return created, nil
}

func (s *KnowledgeService) Update(ctx context.Context, id string, upd domain.KnowledgeUpdate) (*domain.Knowledge, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *KnowledgeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Knowledge article deleted", zap.String("knowledge_id", id))
	return nil
}
