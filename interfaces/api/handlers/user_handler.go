package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
	"github.com/Fco200/UES-Academic-Helper/pkg/utils"
)

type UserHandler struct {
	userService   services.UserService
	maxUploadSize int64
}

func NewUserHandler(userService services.UserService, maxUploadSize int64) *UserHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = 5 << 20
	}
	return &UserHandler{
		userService:   userService,
		maxUploadSize: maxUploadSize,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateProfileRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	logger.InfoContext(ctx, "Profile update attempt", "user_id", user.ID)

	updated, err := h.userService.UpdateProfile(ctx, user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(updated))
}

// UploadPhoto expects a multipart field named "photo"
func (h *UserHandler) UploadPhoto(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return utils.BadRequestResponse(c, "No photo provided")
	}
	if fileHeader.Size > h.maxUploadSize {
		return utils.BadRequestResponse(c, "Photo is too large")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !isImage(contentType) {
		return utils.BadRequestResponse(c, "Only image files are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded photo", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	defer file.Close()

	updated, err := h.userService.UploadPhoto(ctx, user.ID, file, fileHeader.Size, fileHeader.Filename, contentType)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(updated))
}

func isImage(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
		return true
	}
	return false
}
