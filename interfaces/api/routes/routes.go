package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/interfaces/api/handlers"
	"github.com/Fco200/UES-Academic-Helper/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")
	protected := middleware.Protected(jwtSecret)

	SetupAuthRoutes(api, h)
	SetupUserRoutes(api, h, protected)
	SetupSubjectRoutes(api, h, protected)
	SetupReminderRoutes(api, h, protected)
	SetupNewsRoutes(api, h, protected)
	SetupChatRoutes(api, h, protected)
}
