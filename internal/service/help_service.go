package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
)

// HelpService 帮助台门面（工单 + 回复）
type HelpService struct {
	repo   repository.HelpRepository
	logger *zap.Logger
}

func NewHelpService(repo repository.HelpRepository, logger *zap.Logger) *HelpService {
	return &HelpService{repo: repo, logger: logger}
}

func (s *HelpService) List(ctx context.Context) ([]domain.HelpRequest, error) {
	return s.repo.List(ctx)
}

func (s *HelpService) Create(ctx context.Context, title, message, priority, author string) (*domain.HelpRequest, error) {
	if title == "" || message == "" {
		return nil, fmt.Errorf("help request title and message are required: %w", domain.ErrInvalid)
	}
	req, err := s.repo.Create(ctx, title, message, priority, author)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Help request opened",
		zap.String("request_id", req.ID),
		zap.String("priority", req.Priority),
	)
	return req, nil
}

func (s *HelpService) UpdateStatus(ctx context.Context, id, status string) (*domain.HelpRequest, error) {
	switch status {
	case "open", "in_progress", "resolved":
	default:
		return nil, fmt.Errorf("invalid help request status %q: %w", status, domain.ErrInvalid)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// AddReply appends a reply and returns the whole updated request.
func (s *HelpService) AddReply(ctx context.Context, id, message, author string) (*domain.HelpRequest, error) {
	if message == "" {
		return nil, fmt.Errorf("reply message is required: %w", domain.ErrInvalid)
	}
	return s.repo.AddReply(ctx, id, message, author)
}

func (s *HelpService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Help request deleted", zap.String("request_id", id))
	return nil
}
