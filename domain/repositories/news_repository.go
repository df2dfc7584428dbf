package repositories

import (
	"context"

	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/google/uuid"
)

type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.News, error)
	List(ctx context.Context, offset, limit int) ([]*models.News, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
