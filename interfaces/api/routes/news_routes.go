package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/interfaces/api/handlers"
	"github.com/Fco200/UES-Academic-Helper/interfaces/api/middleware"
)

func SetupNewsRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	news := api.Group("/news")
	news.Get("/", h.NewsHandler.List)
	news.Post("/", protected, middleware.AdminOnly(), h.NewsHandler.Create)
	news.Delete("/:id", protected, middleware.AdminOnly(), h.NewsHandler.Delete)
}
