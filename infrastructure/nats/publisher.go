package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

// SubjectReminderSent carries one ReminderSentEvent per delivered reminder
const SubjectReminderSent = "reminders.sent"

// Publisher publishes reminder events with core NATS (at-most-once)
type Publisher struct {
	client *Client
}

var _ ports.EventPublisherPort = (*Publisher)(nil)

// NewPublisher สร้าง Publisher ใหม่
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) PublishReminderSent(ctx context.Context, event *ports.ReminderSentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.conn.Publish(SubjectReminderSent, data); err != nil {
		logger.WarnContext(ctx, "Failed to publish reminder event",
			"task_id", event.TaskID,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.DebugContext(ctx, "Reminder event published", "subject", SubjectReminderSent, "task_id", event.TaskID)
	return nil
}

// NoopPublisher is used when NATS is not configured
type NoopPublisher struct{}

var _ ports.EventPublisherPort = NoopPublisher{}

func (NoopPublisher) PublishReminderSent(context.Context, *ports.ReminderSentEvent) error {
	return nil
}
