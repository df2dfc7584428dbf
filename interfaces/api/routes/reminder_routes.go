package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/interfaces/api/handlers"
	"github.com/Fco200/UES-Academic-Helper/interfaces/api/middleware"
)

// SetupReminderRoutes admin only
func SetupReminderRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	reminders := api.Group("/reminders", protected, middleware.AdminOnly())
	reminders.Post("/sweep", h.ReminderHandler.RunSweep)
	reminders.Get("/status", h.ReminderHandler.Status)
}
