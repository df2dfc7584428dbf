package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/interfaces/api/handlers"
)

func SetupChatRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	api.Post("/chat", protected, h.ChatHandler.Ask)
}
