package sms

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

// ConsoleSender logs text messages instead of sending them
type ConsoleSender struct {
	mu   sync.Mutex
	sent []ports.SMSMessage
}

var _ ports.SMSPort = (*ConsoleSender)(nil)

func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

func (s *ConsoleSender) ProviderName() string {
	return "console"
}

func (s *ConsoleSender) SendSMS(ctx context.Context, msg *ports.SMSMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := "console-" + uuid.NewString()
	s.mu.Lock()
	s.sent = append(s.sent, *msg)
	s.mu.Unlock()

	logger.InfoContext(ctx, "SMS (console)", "to", msg.To, "body", msg.Body, "message_id", id)
	return id, nil
}

func (s *ConsoleSender) Sent() []ports.SMSMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.SMSMessage(nil), s.sent...)
}
