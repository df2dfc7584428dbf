package services

import (
	"context"
	"io"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/google/uuid"
)

// LoginResult carries the issued token; Created is true on first login
type LoginResult struct {
	Token   string
	User    *models.User
	Created bool
}

type UserService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)
	UploadPhoto(ctx context.Context, userID uuid.UUID, file io.Reader, size int64, filename, contentType string) (*models.User, error)
	HashPassword(password string) (string, error)
}

type RecoveryService interface {
	// RequestCode sends a 6-digit code to the account's own channel
	RequestCode(ctx context.Context, identifier string) error
	ConfirmCode(ctx context.Context, req *dto.RecoveryConfirmRequest) error
}
