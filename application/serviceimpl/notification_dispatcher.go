package serviceimpl

import (
	"context"
	"fmt"

	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

// ReminderSubject and ReminderBody render the fixed reminder template
func ReminderSubject(description string) string {
	return "Recordatorio: " + description
}

func ReminderBody(description, dueDate string) string {
	return fmt.Sprintf("Hola! Te recordamos que tu tarea \"%s\" vence el %s.", description, dueDate)
}

// NotificationDispatcher routes one message to the owner's channel
type NotificationDispatcher struct {
	mailer ports.MailerPort
	sms    ports.SMSPort
}

var _ services.NotificationDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(mailer ports.MailerPort, sms ports.SMSPort) *NotificationDispatcher {
	return &NotificationDispatcher{mailer: mailer, sms: sms}
}

func (d *NotificationDispatcher) Dispatch(ctx context.Context, reminder services.Reminder) (*services.Delivery, error) {
	return d.Notify(ctx,
		reminder.Owner,
		ReminderSubject(reminder.Description),
		ReminderBody(reminder.Description, reminder.DueDate),
	)
}

// Notify sends exactly one message. SMS has no subject line, so only the body goes out.
func (d *NotificationDispatcher) Notify(ctx context.Context, owner models.Owner, subject, body string) (*services.Delivery, error) {
	switch owner.Kind {
	case models.OwnerKindEmail:
		id, err := d.mailer.SendMail(ctx, &ports.MailMessage{
			To:      owner.Value,
			Subject: subject,
			Text:    body,
		})
		if err != nil {
			return nil, fmt.Errorf("send email via %s: %w", d.mailer.ProviderName(), err)
		}
		return &services.Delivery{Channel: models.OwnerKindEmail, MessageID: id}, nil

	case models.OwnerKindPhone:
		id, err := d.sms.SendSMS(ctx, &ports.SMSMessage{
			To:   owner.Value,
			Body: body,
		})
		if err != nil {
			return nil, fmt.Errorf("send sms via %s: %w", d.sms.ProviderName(), err)
		}
		return &services.Delivery{Channel: models.OwnerKindPhone, MessageID: id}, nil

	default:
		logger.WarnContext(ctx, "Unknown owner kind", "kind", owner.Kind, "owner", owner.Value)
		return nil, services.ErrUnsupportedChannel
	}
}
