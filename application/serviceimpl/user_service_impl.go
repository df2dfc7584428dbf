package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
	"github.com/Fco200/UES-Academic-Helper/pkg/utils"
)

// AuthConfig login rules and token settings
type AuthConfig struct {
	JWTSecret          string
	JWTTTL             time.Duration
	DefaultPassword    string
	AdminIdentifier    string
	DefaultUniversity  string
	DefaultCareer      string
	DefaultCountryCode string
}

type UserServiceImpl struct {
	config   AuthConfig
	userRepo repositories.UserRepository
	storage  ports.StoragePort
	now      func() time.Time
}

func NewUserService(config AuthConfig, userRepo repositories.UserRepository, storage ports.StoragePort) *UserServiceImpl {
	if config.JWTTTL == 0 {
		config.JWTTTL = 7 * 24 * time.Hour
	}
	if admin, err := models.ParseOwner(config.AdminIdentifier, config.DefaultCountryCode); err == nil {
		config.AdminIdentifier = admin.Value
	}
	return &UserServiceImpl{
		config:   config,
		userRepo: userRepo,
		storage:  storage,
		now:      time.Now,
	}
}

var _ services.UserService = (*UserServiceImpl)(nil)

func (s *UserServiceImpl) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Login signs in an existing account or creates one on first use with the shared default password
func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*services.LoginResult, error) {
	owner, err := models.ParseOwner(req.Identifier, s.config.DefaultCountryCode)
	if err != nil {
		return nil, err
	}

	created := false
	user, err := s.userRepo.GetByIdentifier(ctx, owner.Value)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		user, err = s.createAccount(ctx, owner, req)
		if err != nil {
			return nil, err
		}
		created = true
	case err != nil:
		logger.ErrorContext(ctx, "Failed to load user", "identifier", owner.Value, "error", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Wrong password", "identifier", owner.Value)
		return nil, services.ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err := s.userRepo.TouchLastAccess(ctx, user.ID, now); err != nil {
		logger.WarnContext(ctx, "Failed to update last access", "user_id", user.ID, "error", err)
	} else {
		user.LastAccessAt = &now
	}

	token, err := utils.GenerateToken(user.ID, user.Identifier, string(user.OwnerKind), user.Role, s.config.JWTSecret, s.config.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "created", created)
	return &services.LoginResult{Token: token, User: user, Created: created}, nil
}

func (s *UserServiceImpl) createAccount(ctx context.Context, owner models.Owner, req *dto.LoginRequest) (*models.User, error) {
	hash, err := s.HashPassword(s.config.DefaultPassword)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Identifier:   owner.Value,
		OwnerKind:    owner.Kind,
		PasswordHash: hash,
		Role:         models.RoleUser,
		University:   strings.TrimSpace(req.University),
		Career:       strings.TrimSpace(req.Career),
	}
	if owner.IsPhone() {
		user.Phone = owner.Value
	}
	if s.config.AdminIdentifier != "" && owner.Value == s.config.AdminIdentifier {
		user.Role = models.RoleAdmin
	}
	user.ApplyDefaults(s.config.DefaultUniversity, s.config.DefaultCareer)

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User created on first login", "user_id", user.ID, "kind", owner.Kind, "role", user.Role)
	return user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	fields := dto.UpdateProfileRequestToFields(req)
	if err := s.userRepo.UpdateProfile(ctx, userID, fields); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// UploadPhoto stores the image and points photo_url at it
func (s *UserServiceImpl) UploadPhoto(ctx context.Context, userID uuid.UUID, file io.Reader, size int64, filename, contentType string) (*models.User, error) {
	if s.storage == nil {
		return nil, errors.New("storage is not configured")
	}
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	url, err := s.storage.UploadFile(ctx, file, size, utils.ProfilePhotoPath(userID.String(), filename), contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload photo", "user_id", userID, "provider", s.storage.GetProviderName(), "error", err)
		return nil, err
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, map[string]any{"photo_url": url}); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Profile photo updated", "user_id", userID, "url", url)
	return s.GetProfile(ctx, userID)
}
