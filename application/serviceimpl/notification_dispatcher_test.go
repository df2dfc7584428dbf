package serviceimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fco200/UES-Academic-Helper/domain/models"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/email"
	"github.com/Fco200/UES-Academic-Helper/infrastructure/sms"
)

func TestDispatchPicksChannelFromOwner(t *testing.T) {
	tests := []struct {
		name      string
		owner     models.Owner
		wantMails int
		wantTexts int
		wantErr   error
	}{
		{"email", emailOwner("a@x.com"), 1, 0, nil},
		{"phone", phoneOwner("+16621234567"), 0, 1, nil},
		{"unknown", models.Owner{Kind: "pigeon", Value: "coop"}, 0, 0, services.ErrUnsupportedChannel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := email.NewConsoleMailer()
			texts := sms.NewConsoleSender()
			d := NewNotificationDispatcher(mailer, texts)

			delivery, err := d.Dispatch(context.Background(), services.Reminder{
				Owner:       tt.owner,
				Description: "Essay",
				DueDate:     "2026-10-16",
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.owner.Kind, delivery.Channel)
			}
			assert.Len(t, mailer.Sent(), tt.wantMails)
			assert.Len(t, texts.Sent(), tt.wantTexts)
		})
	}
}

func TestDispatchWrapsTransportError(t *testing.T) {
	mailer := &flakyMailer{ConsoleMailer: email.NewConsoleMailer(), failFor: map[string]bool{"a@x.com": true}}
	d := NewNotificationDispatcher(mailer, sms.NewConsoleSender())

	_, err := d.Dispatch(context.Background(), services.Reminder{Owner: emailOwner("a@x.com"), Description: "x", DueDate: "2026-10-16"})
	assert.ErrorIs(t, err, errTransport)
	assert.Contains(t, err.Error(), "console")
}

func TestReminderTemplate(t *testing.T) {
	assert.Equal(t, "Recordatorio: Tesis", ReminderSubject("Tesis"))
	assert.Equal(t, "Hola! Te recordamos que tu tarea \"Tesis\" vence el 2026-12-01.", ReminderBody("Tesis", "2026-12-01"))
}
