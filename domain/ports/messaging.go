package ports

import (
	"context"
	"time"
)

// ReminderSentEvent is emitted after a reminder reached its transport
type ReminderSentEvent struct {
	SubjectID string    `json:"subject_id"`
	TaskID    string    `json:"task_id"`
	Owner     string    `json:"owner"`
	Channel   string    `json:"channel"`
	DueDate   string    `json:"due_date"`
	MessageID string    `json:"message_id,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// EventPublisherPort publishes fire-and-forget domain events
type EventPublisherPort interface {
	PublishReminderSent(ctx context.Context, event *ReminderSentEvent) error
}
