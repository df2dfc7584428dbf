package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

type NewsServiceImpl struct {
	newsRepo repositories.NewsRepository
}

func NewNewsService(newsRepo repositories.NewsRepository) services.NewsService {
	return &NewsServiceImpl{newsRepo: newsRepo}
}

func (s *NewsServiceImpl) ListNews(ctx context.Context, offset, limit int) ([]*models.News, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.newsRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.newsRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *NewsServiceImpl) CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*models.News, error) {
	title := strings.TrimSpace(req.Title)
	news := &models.News{
		Title:    title,
		Slug:     slug.Make(title),
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if err := s.newsRepo.Create(ctx, news); err != nil {
		logger.ErrorContext(ctx, "Failed to create news", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "News published", "news_id", news.ID, "slug", news.Slug)
	return news, nil
}

func (s *NewsServiceImpl) DeleteNews(ctx context.Context, id uuid.UUID) error {
	if err := s.newsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrNewsNotFound
		}
		return err
	}
	return nil
}
