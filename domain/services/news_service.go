package services

import (
	"context"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/google/uuid"
)

type NewsService interface {
	ListNews(ctx context.Context, offset, limit int) ([]*models.News, int64, error)
	CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*models.News, error)
	DeleteNews(ctx context.Context, id uuid.UUID) error
}

type ChatService interface {
	Ask(ctx context.Context, message string) (string, error)
	Enabled() bool
}
