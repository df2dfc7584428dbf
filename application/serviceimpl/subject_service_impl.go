package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

type SubjectServiceImpl struct {
	subjectRepo repositories.SubjectRepository
	reminders   services.ReminderService
}

func NewSubjectService(subjectRepo repositories.SubjectRepository, reminders services.ReminderService) services.SubjectService {
	return &SubjectServiceImpl{
		subjectRepo: subjectRepo,
		reminders:   reminders,
	}
}

func (s *SubjectServiceImpl) ListSubjects(ctx context.Context, owner models.Owner) ([]*models.Subject, error) {
	return s.subjectRepo.GetByOwner(ctx, owner.Value)
}

func (s *SubjectServiceImpl) CreateSubject(ctx context.Context, owner models.Owner, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	if owner.Value == "" {
		return nil, models.ErrInvalidOwner
	}

	subject := &models.Subject{
		Owner:     owner.Value,
		OwnerKind: owner.Kind,
		Name:      strings.TrimSpace(req.Name),
		Tasks:     []models.Task{},
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		logger.ErrorContext(ctx, "Failed to create subject", "owner", owner.Value, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Subject created", "subject_id", subject.ID, "owner", owner.Value)
	return subject, nil
}

// ownedSubject loads a subject and hides it from anyone but its owner
func (s *SubjectServiceImpl) ownedSubject(ctx context.Context, owner models.Owner, subjectID uuid.UUID) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrSubjectNotFound
		}
		return nil, err
	}
	if subject.Owner != owner.Value {
		return nil, services.ErrSubjectNotFound
	}
	return subject, nil
}

func (s *SubjectServiceImpl) DeleteSubject(ctx context.Context, owner models.Owner, subjectID uuid.UUID) error {
	if _, err := s.ownedSubject(ctx, owner, subjectID); err != nil {
		return err
	}
	if err := s.subjectRepo.Delete(ctx, subjectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrSubjectNotFound
		}
		return err
	}

	logger.InfoContext(ctx, "Subject deleted", "subject_id", subjectID)
	return nil
}

// AddTask stores the task; a task due today is notified before returning.
// A failed immediate dispatch leaves the task for the next sweep.
func (s *SubjectServiceImpl) AddTask(ctx context.Context, owner models.Owner, subjectID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.ownedSubject(ctx, owner, subjectID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Description: strings.TrimSpace(req.Description),
		DueDate:     req.DueDate,
	}
	if err := s.subjectRepo.AddTask(ctx, subjectID, task); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrSubjectNotFound
		}
		logger.ErrorContext(ctx, "Failed to add task", "subject_id", subjectID, "error", err)
		return nil, err
	}

	if s.reminders != nil && s.reminders.IsDueToday(task.DueDate) {
		if _, err := s.reminders.SendTaskReminder(ctx, owner, subjectID, task.ID); err != nil {
			logger.WarnContext(ctx, "Immediate reminder failed, sweep will retry",
				"task_id", task.ID,
				"error", err,
			)
		} else {
			task.ReminderSent = true
		}
	}

	logger.InfoContext(ctx, "Task added", "subject_id", subjectID, "task_id", task.ID, "reminder_sent", task.ReminderSent)
	return task, nil
}

func (s *SubjectServiceImpl) UpdateTask(ctx context.Context, owner models.Owner, subjectID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	changes := repositories.TaskChanges{DueDate: req.DueDate}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		changes.Description = &desc
	}
	return s.updateTask(ctx, owner, subjectID, taskID, changes)
}

func (s *SubjectServiceImpl) CompleteTask(ctx context.Context, owner models.Owner, subjectID, taskID uuid.UUID) (*models.Task, error) {
	completed := true
	return s.updateTask(ctx, owner, subjectID, taskID, repositories.TaskChanges{Completed: &completed})
}

func (s *SubjectServiceImpl) updateTask(ctx context.Context, owner models.Owner, subjectID, taskID uuid.UUID, changes repositories.TaskChanges) (*models.Task, error) {
	if _, err := s.ownedSubject(ctx, owner, subjectID); err != nil {
		return nil, err
	}

	task, err := s.subjectRepo.UpdateTask(ctx, subjectID, taskID, changes)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}
	return task, nil
}

func (s *SubjectServiceImpl) DeleteTask(ctx context.Context, owner models.Owner, subjectID, taskID uuid.UUID) error {
	if _, err := s.ownedSubject(ctx, owner, subjectID); err != nil {
		return err
	}
	if err := s.subjectRepo.DeleteTask(ctx, subjectID, taskID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrTaskNotFound
		}
		return err
	}
	return nil
}
