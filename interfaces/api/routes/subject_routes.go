package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/interfaces/api/handlers"
)

func SetupSubjectRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	subjects := api.Group("/subjects", protected)

	subjects.Get("/", h.SubjectHandler.List)
	subjects.Post("/", h.SubjectHandler.Create)
	subjects.Delete("/:id", h.SubjectHandler.Delete)

	// tasks
	subjects.Post("/:id/tasks", h.SubjectHandler.AddTask)
	subjects.Put("/:id/tasks/:taskId", h.SubjectHandler.UpdateTask)
	subjects.Patch("/:id/tasks/:taskId/complete", h.SubjectHandler.CompleteTask)
	subjects.Delete("/:id/tasks/:taskId", h.SubjectHandler.DeleteTask)
	subjects.Post("/:id/tasks/:taskId/remind", h.SubjectHandler.RemindTask)
}
