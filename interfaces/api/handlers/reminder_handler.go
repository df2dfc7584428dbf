package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
	"github.com/Fco200/UES-Academic-Helper/pkg/utils"
)

// ReminderHandler admin endpoints ของ reminder sweep
type ReminderHandler struct {
	reminderService services.ReminderService
}

func NewReminderHandler(reminderService services.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

func sweepToResponse(result *services.SweepResult) *dto.SweepResponse {
	if result == nil {
		return nil
	}
	return &dto.SweepResponse{
		Date:               result.Date,
		SubjectsScanned:    result.SubjectsScanned,
		TasksChecked:       result.TasksChecked,
		Sent:               result.Sent,
		Failed:             result.Failed,
		SkippedInvalidDate: result.SkippedInvalidDate,
		SaveFailures:       result.SaveFailures,
		DurationMs:         result.Duration.Milliseconds(),
	}
}

// RunSweep runs a sweep inside the request; 409 while another one is running
func (h *ReminderHandler) RunSweep(c *fiber.Ctx) error {
	ctx := c.UserContext()

	result, err := h.reminderService.RunSweep(ctx)
	if err != nil {
		if errors.Is(err, services.ErrSweepInProgress) {
			return utils.ConflictResponse(c, "A reminder sweep is already running")
		}
		logger.ErrorContext(ctx, "Manual sweep failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, sweepToResponse(result))
}

func (h *ReminderHandler) Status(c *fiber.Ctx) error {
	status := h.reminderService.Status()

	jobs := make([]dto.JobResponse, 0, len(status.Jobs))
	for _, job := range status.Jobs {
		jobs = append(jobs, dto.JobResponse{
			ID:      job.ID,
			Cron:    job.Cron,
			Active:  job.Active,
			LastRun: job.LastRun,
			NextRun: job.NextRun,
		})
	}

	return utils.SuccessResponse(c, &dto.ReminderStatusResponse{
		Enabled:   status.Enabled,
		Cron:      status.Cron,
		Timezone:  status.Timezone,
		Window:    status.Window,
		Running:   status.Running,
		LastRun:   status.LastRun,
		NextRun:   status.NextRun,
		LastSweep: sweepToResponse(status.LastSweep),
		Jobs:      jobs,
	})
}
