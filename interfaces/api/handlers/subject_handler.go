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

type SubjectHandler struct {
	subjectService  services.SubjectService
	reminderService services.ReminderService
}

func NewSubjectHandler(subjectService services.SubjectService, reminderService services.ReminderService) *SubjectHandler {
	return &SubjectHandler{
		subjectService:  subjectService,
		reminderService: reminderService,
	}
}

// subjectError maps service errors to responses
func subjectError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSubjectNotFound):
		return utils.NotFoundResponse(c, "Subject not found")
	case errors.Is(err, services.ErrTaskNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, services.ErrReminderAlreadySent):
		return utils.ConflictResponse(c, "Reminder already sent")
	case errors.Is(err, services.ErrUnsupportedChannel), errors.Is(err, models.ErrInvalidOwner):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.ErrorContext(c.UserContext(), "Subject request failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}

func (h *SubjectHandler) List(c *fiber.Ctx) error {
	owner, err := ownerFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	subjects, err := h.subjectService.ListSubjects(c.UserContext(), owner)
	if err != nil {
		return subjectError(c, err)
	}
	return utils.SuccessResponse(c, dto.SubjectsToResponses(subjects))
}

func (h *SubjectHandler) Create(c *fiber.Ctx) error {
	owner, err := ownerFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateSubjectRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	subject, err := h.subjectService.CreateSubject(c.UserContext(), owner, &req)
	if err != nil {
		return subjectError(c, err)
	}
	return utils.CreatedResponse(c, dto.SubjectToSubjectResponse(subject))
}

func (h *SubjectHandler) Delete(c *fiber.Ctx) error {
	owner, err := ownerFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	subjectID, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid subject ID")
	}

	if err := h.subjectService.DeleteSubject(c.UserContext(), owner, subjectID); err != nil {
		return subjectError(c, err)
	}
	return utils.NoContentResponse(c)
}

func (h *SubjectHandler) AddTask(c *fiber.Ctx) error {
	owner, err := ownerFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	subjectID, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid subject ID")
	}

	var req dto.CreateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.subjectService.AddTask(c.UserContext(), owner, subjectID, &req)
	if err != nil {
		return subjectError(c, err)
	}
	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *SubjectHandler) UpdateTask(c *fiber.Ctx) error {
	owner, err := ownerFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	subjectID, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid subject ID")
	}
	taskID, ok := paramUUID(c, "taskId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.subjectService.UpdateTask(c.UserContext(), owner, subjectID, taskID, &req)
	if err != nil {
		return subjectError(c, err)
	}
	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *SubjectHandler) CompleteTask(c *fiber.Ctx) error {
	owner, err := ownerFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	subjectID, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid subject ID")
	}
	taskID, ok := paramUUID(c, "taskId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.subjectService.CompleteTask(c.UserContext(), owner, subjectID, taskID)
	if err != nil {
		return subjectError(c, err)
	}
	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *SubjectHandler) DeleteTask(c *fiber.Ctx) error {
	owner, err := ownerFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	subjectID, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid subject ID")
	}
	taskID, ok := paramUUID(c, "taskId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.subjectService.DeleteTask(c.UserContext(), owner, subjectID, taskID); err != nil {
		return subjectError(c, err)
	}
	return utils.NoContentResponse(c)
}

// RemindTask sends the reminder of one task now instead of waiting for the sweep
func (h *SubjectHandler) RemindTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	owner, err := ownerFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	subjectID, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid subject ID")
	}
	taskID, ok := paramUUID(c, "taskId")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	delivery, err := h.reminderService.SendTaskReminder(ctx, owner, subjectID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrSubjectNotFound) || errors.Is(err, services.ErrTaskNotFound) ||
			errors.Is(err, services.ErrReminderAlreadySent) || errors.Is(err, services.ErrUnsupportedChannel) {
			return subjectError(c, err)
		}
		logger.ErrorContext(ctx, "Manual reminder failed", "task_id", taskID, "error", err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, utils.ErrCodeUnavailable, "Reminder could not be delivered", nil)
	}

	return utils.SuccessResponse(c, dto.DeliveryResponse{
		Channel:   string(delivery.Channel),
		MessageID: delivery.MessageID,
	})
}
