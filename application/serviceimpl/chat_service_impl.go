package serviceimpl

import (
	"context"
	"strings"

	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/domain/services"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

// ChatServiceImpl relays questions to the model; a nil model means chat is off
type ChatServiceImpl struct {
	model ports.ChatModelPort
}

func NewChatService(model ports.ChatModelPort) services.ChatService {
	return &ChatServiceImpl{model: model}
}

func (s *ChatServiceImpl) Enabled() bool {
	return s.model != nil
}

func (s *ChatServiceImpl) Ask(ctx context.Context, message string) (string, error) {
	if s.model == nil {
		return "", services.ErrChatUnavailable
	}

	reply, err := s.model.Reply(ctx, strings.TrimSpace(message))
	if err != nil {
		logger.ErrorContext(ctx, "Chat model failed", "error", err)
		return "", err
	}
	return reply, nil
}
