package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	Timeout    time.Duration // HTTP timeout per request, default 15s
}

// messageCreator is the slice of the Twilio API this sender uses
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type TwilioSender struct {
	api  messageCreator
	from string
}

var _ ports.SMSPort = (*TwilioSender)(nil)

func NewTwilioSender(cfg TwilioConfig) (*TwilioSender, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil, fmt.Errorf("twilio: account sid, auth token and from number are required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	client.SetTimeout(timeout)

	return &TwilioSender{api: client.Api, from: cfg.FromNumber}, nil
}

func (s *TwilioSender) ProviderName() string {
	return "twilio"
}

// SendSMS creates one message. The Twilio client takes no context, so the
// request is bounded by the client timeout and ctx is checked before sending.
func (s *TwilioSender) SendSMS(ctx context.Context, msg *ports.SMSMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("twilio: %w", err)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(s.from)
	params.SetBody(msg.Body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio: %w", err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	logger.InfoContext(ctx, "SMS sent", "provider", "twilio", "to", msg.To, "message_id", sid)
	return sid, nil
}
