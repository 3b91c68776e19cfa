package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
)

// NewsService 公告/新闻门面
type NewsService struct {
	repo   repository.NewsRepository
	logger *zap.Logger
}

func NewNewsService(repo repository.NewsRepository, logger *zap.Logger) *NewsService {
	return &NewsService{repo: repo, logger: logger}
}

func (s *NewsService) List(ctx context.Context) ([]domain.News, error) {
	return s.repo.List(ctx)
}

func (s *NewsService) Create(ctx context.Context, title, content, priority string) (*domain.News, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("news title and content are required: %w", domain.ErrInvalid)
	}
	item, err := s.repo.Create(ctx, title, content, priority)
	if err != nil {
		return nil, err
	}
	s.logger.Info("News item created",
		zap.String("news_id", item.ID),
		zap.String("priority", item.Priority),
	)
	return item, nil
}

func (s *NewsService) Update(ctx context.Context, id string, upd domain.NewsUpdate) (*domain.News, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("News item deleted", zap.String("news_id", id))
	return nil
}
