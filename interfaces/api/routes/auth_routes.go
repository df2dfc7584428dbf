package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/interfaces/api/handlers"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers) {
	auth := api.Group("/auth")

	auth.Post("/login", h.AuthHandler.Login)
	auth.Post("/recovery", h.AuthHandler.RequestRecovery)
	auth.Post("/recovery/confirm", h.AuthHandler.ConfirmRecovery)
}
