package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
	"github.com/Fco200/UES-Academic-Helper/pkg/utils"
)

type AuthHandler struct {
	userService     services.UserService
	recoveryService services.RecoveryService
}

func NewAuthHandler(userService services.UserService, recoveryService services.RecoveryService) *AuthHandler {
	return &AuthHandler{
		userService:     userService,
		recoveryService: recoveryService,
	}
}

// Login signs in, creating the account on first use
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	logger.InfoContext(ctx, "Login attempt", "identifier", req.Identifier)

	result, err := h.userService.Login(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return utils.UnauthorizedResponse(c, "Clave incorrecta")
		case errors.Is(err, models.ErrInvalidOwner):
			return utils.BadRequestResponse(c, "Correo o teléfono inválido")
		default:
			logger.ErrorContext(ctx, "Login failed", "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	response := &dto.LoginResponse{
		Token:   result.Token,
		Created: result.Created,
		User:    *dto.UserToUserResponse(result.User),
	}
	if result.Created {
		return utils.CreatedResponse(c, response)
	}
	return utils.SuccessResponse(c, response)
}

// RequestRecovery sends a one-time code to the account's channel
func (h *AuthHandler) RequestRecovery(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RecoveryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	if err := h.recoveryService.RequestCode(ctx, req.Identifier); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, models.ErrInvalidOwner):
			return utils.NotFoundResponse(c, "No encontrado")
		default:
			logger.ErrorContext(ctx, "Recovery code not sent", "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Código enviado"})
}

func (h *AuthHandler) ConfirmRecovery(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RecoveryConfirmRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	if err := h.recoveryService.ConfirmCode(ctx, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCode), errors.Is(err, models.ErrInvalidOwner):
			return utils.BadRequestResponse(c, "Código inválido")
		default:
			logger.ErrorContext(ctx, "Password reset failed", "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Contraseña actualizada"})
}
