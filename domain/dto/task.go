package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type CreateTaskRequest struct {
	Description string `json:"description" validate:"required,min=1,max=1000"`
	DueDate     string `json:"dueDate" validate:"required,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Description *string `json:"description" validate:"omitempty,min=1,max=1000"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

type SubjectResponse struct {
	ID        uuid.UUID      `json:"id"`
	Owner     string         `json:"owner"`
	OwnerKind string         `json:"ownerKind"`
	Name      string         `json:"name"`
	Tasks     []TaskResponse `json:"tasks"`
	CreatedAt time.Time      `json:"createdAt"`
}

type TaskResponse struct {
	ID           uuid.UUID `json:"id"`
	SubjectID    uuid.UUID `json:"subjectId"`
	Description  string    `json:"description"`
	DueDate      string    `json:"dueDate"`
	Completed    bool      `json:"completed"`
	ReminderSent bool      `json:"reminderSent"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DeliveryResponse is returned by the manual reminder endpoint
type DeliveryResponse struct {
	Channel   string `json:"channel"`
	MessageID string `json:"messageId"`
}
