package serviceimpl

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
	"github.com/Fco200/UES-Academic-Helper/pkg/utils"
)

const recoveryCodeLength = 6

type RecoveryServiceImpl struct {
	userRepo    repositories.UserRepository
	codes       ports.CodeStorePort
	dispatcher  services.NotificationDispatcher
	users       services.UserService
	codeTTL     time.Duration
	countryCode string
}

var _ services.RecoveryService = (*RecoveryServiceImpl)(nil)

func NewRecoveryService(
	userRepo repositories.UserRepository,
	codes ports.CodeStorePort,
	dispatcher services.NotificationDispatcher,
	users services.UserService,
	codeTTL time.Duration,
	countryCode string,
) *RecoveryServiceImpl {
	if codeTTL == 0 {
		codeTTL = 15 * time.Minute
	}
	return &RecoveryServiceImpl{
		userRepo:    userRepo,
		codes:       codes,
		dispatcher:  dispatcher,
		users:       users,
		codeTTL:     codeTTL,
		countryCode: countryCode,
	}
}

func (s *RecoveryServiceImpl) lookup(ctx context.Context, identifier string) (*models.User, error) {
	owner, err := models.ParseOwner(identifier, s.countryCode)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByIdentifier(ctx, owner.Value)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// RequestCode replaces any previous code of the account
func (s *RecoveryServiceImpl) RequestCode(ctx context.Context, identifier string) error {
	user, err := s.lookup(ctx, identifier)
	if err != nil {
		return err
	}

	code, err := utils.GenerateNumericCode(recoveryCodeLength)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	if err := s.codes.Save(ctx, user.Identifier, code, s.codeTTL); err != nil {
		logger.ErrorContext(ctx, "Failed to store recovery code", "user_id", user.ID, "error", err)
		return err
	}

	body := fmt.Sprintf("Tu código de recuperación es %s. Vence en %d minutos.", code, int(s.codeTTL.Minutes()))
	if _, err := s.dispatcher.Notify(ctx, user.Owner(), "Tu Código: "+code, body); err != nil {
		logger.ErrorContext(ctx, "Failed to send recovery code", "user_id", user.ID, "error", err)
		_ = s.codes.Delete(ctx, user.Identifier)
		return err
	}

	logger.InfoContext(ctx, "Recovery code sent", "user_id", user.ID, "channel", user.OwnerKind)
	return nil
}

// ConfirmCode sets the new password and burns the code
func (s *RecoveryServiceImpl) ConfirmCode(ctx context.Context, req *dto.RecoveryConfirmRequest) error {
	user, err := s.lookup(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return services.ErrInvalidCode
		}
		return err
	}

	stored, err := s.codes.Get(ctx, user.Identifier)
	if err != nil {
		if errors.Is(err, ports.ErrCodeNotFound) {
			return services.ErrInvalidCode
		}
		return err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.Code)) != 1 {
		logger.WarnContext(ctx, "Wrong recovery code", "user_id", user.ID)
		return services.ErrInvalidCode
	}

	hash, err := s.users.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	if err := s.codes.Delete(ctx, user.Identifier); err != nil {
		logger.WarnContext(ctx, "Failed to delete used recovery code", "user_id", user.ID, "error", err)
	}

	logger.InfoContext(ctx, "Password reset with recovery code", "user_id", user.ID)
	return nil
}
