package services

import (
	"context"

	"github.com/Fco200/UES-Academic-Helper/domain/dto"
	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/google/uuid"
)

// SubjectService is owner-scoped: a subject of another owner behaves as missing
type SubjectService interface {
	ListSubjects(ctx context.Context, owner models.Owner) ([]*models.Subject, error)
	CreateSubject(ctx context.Context, owner models.Owner, req *dto.CreateSubjectRequest) (*models.Subject, error)
	DeleteSubject(ctx context.Context, owner models.Owner, subjectID uuid.UUID) error

	// AddTask dispatches a reminder right away when the task is due today
	AddTask(ctx context.Context, owner models.Owner, subjectID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, owner models.Owner, subjectID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	CompleteTask(ctx context.Context, owner models.Owner, subjectID, taskID uuid.UUID) (*models.Task, error)
	DeleteTask(ctx context.Context, owner models.Owner, subjectID, taskID uuid.UUID) error
}
