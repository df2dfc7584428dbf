package email

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

// ConsoleMailer logs messages instead of sending them; used in development
type ConsoleMailer struct {
	mu   sync.Mutex
	sent []ports.MailMessage
}

var _ ports.MailerPort = (*ConsoleMailer)(nil)

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (m *ConsoleMailer) ProviderName() string {
	return "console"
}

func (m *ConsoleMailer) SendMail(ctx context.Context, msg *ports.MailMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := "console-" + uuid.NewString()
	m.mu.Lock()
	m.sent = append(m.sent, *msg)
	m.mu.Unlock()

	logger.InfoContext(ctx, "Email (console)",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Text,
		"message_id", id,
	)
	return id, nil
}

// Sent returns a copy of every message logged so far
func (m *ConsoleMailer) Sent() []ports.MailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.MailMessage(nil), m.sent...)
}
