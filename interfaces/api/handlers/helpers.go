package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
	"github.com/Fco200/UES-Academic-Helper/pkg/utils"
)

// parseBody decodes and validates a JSON body. When it reports false the 400 is
// already written and the handler must return err as is.
func parseBody(c *fiber.Ctx, req any) (bool, error) {
	ctx := c.UserContext()

	if err := c.BodyParser(req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return false, utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return false, utils.ValidationErrorResponse(c, errors)
	}
	return true, nil
}

// ownerFromContext builds the owner identity carried by the JWT
func ownerFromContext(c *fiber.Ctx) (models.Owner, error) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return models.Owner{}, err
	}
	return models.Owner{Kind: models.OwnerKind(user.OwnerKind), Value: user.Identifier}, nil
}

func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}
