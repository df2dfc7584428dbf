package repositories

import (
	"context"
	"errors"

	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned by every repository when the row does not exist
var ErrNotFound = errors.New("record not found")

// ErrAlreadyMarked means the task's reminder flag was already set
var ErrAlreadyMarked = errors.New("reminder already marked")

// TaskChanges are the user-editable task fields; nil leaves a field untouched
type TaskChanges struct {
	Description *string
	DueDate     *string
	Completed   *bool
}

type SubjectRepository interface {
	// FindAll returns every subject with its tasks, across all owners
	FindAll(ctx context.Context) ([]*models.Subject, error)
	// Save persists the sweep's mutations of a subject: ReminderSent moves to true
	// for flagged tasks. User fields are never written back from a snapshot.
	Save(ctx context.Context, subject *models.Subject) error

	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Subject, error)
	GetByOwner(ctx context.Context, owner string) ([]*models.Subject, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddTask(ctx context.Context, subjectID uuid.UUID, task *models.Task) error
	GetTask(ctx context.Context, subjectID, taskID uuid.UUID) (*models.Task, error)
	UpdateTask(ctx context.Context, subjectID, taskID uuid.UUID, changes TaskChanges) (*models.Task, error)
	DeleteTask(ctx context.Context, subjectID, taskID uuid.UUID) error
	MarkReminderSent(ctx context.Context, subjectID, taskID uuid.UUID) error
}
