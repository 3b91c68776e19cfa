package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
)

// PolicyService 制度/政策门面
type PolicyService struct {
	repo   repository.PoliciesRepository
	logger *zap.Logger
}

func NewPolicyService(repo repository.PoliciesRepository, logger *zap.Logger) *PolicyService {
	return &PolicyService{repo: repo, logger: logger}
}

func (s *PolicyService) List(ctx context.Context) ([]domain.Policy, error) {
	return s.repo.List(ctx)
}

func (s *PolicyService) Create(ctx context.Context, p domain.Policy) (*domain.Policy, error) {
	if p.Title == "" || p.Content == "" {
		return nil, fmt.Errorf("policy title and content are required: %w", domain.ErrInvalid)
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Policy created",
		zap.String("policy_id", created.ID),
		zap.String("category", created.Category),
	)
	return created, nil
}

func (s *PolicyService) Update(ctx context.Context, id string, upd domain.PolicyUpdate) (*domain.Policy, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *PolicyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Policy deleted", zap.String("policy_id", id))
	return nil
}
