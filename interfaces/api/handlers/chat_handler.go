package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
	"github.com/Fco200/UES-Academic-Helper/pkg/utils"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if !h.chatService.Enabled() {
		return utils.ServiceUnavailableResponse(c, "Chat assistant is not configured")
	}

	var req dto.ChatRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	reply, err := h.chatService.Ask(ctx, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrChatUnavailable) {
			return utils.ServiceUnavailableResponse(c, "Chat assistant is not configured")
		}
		logger.ErrorContext(ctx, "Chat request failed", "error", err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, utils.ErrCodeUnavailable, "Chat assistant failed", nil)
	}

	return utils.SuccessResponse(c, dto.ChatResponse{Reply: reply})
}
