package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

const (
	defaultHost = "https://api.sendgrid.com"
	endpoint    = "/v3/mail/send"
)

type SendgridConfig struct {
	APIKey   string
	FromName string
	FromAddr string
	Host     string // default https://api.sendgrid.com
}

type SendgridMailer struct {
	key  string
	host string
	from *sgmail.Email
}

var _ ports.MailerPort = (*SendgridMailer)(nil)

func NewSendgridMailer(cfg SendgridConfig) (*SendgridMailer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("sendgrid: api key is required")
	}
	host := cfg.Host
	if host == "" {
		host = defaultHost
	}
	return &SendgridMailer{
		key:  cfg.APIKey,
		host: host,
		from: sgmail.NewEmail(cfg.FromName, cfg.FromAddr),
	}, nil
}

func (m *SendgridMailer) ProviderName() string {
	return "sendgrid"
}

func (m *SendgridMailer) prepare(msg *ports.MailMessage) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail("", msg.To))

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/plain", msg.Text))
	if msg.HTML != "" {
		v3.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}
	return v3
}

// SendMail posts one message to the v3 API. ctx cancels the request itself.
func (m *SendgridMailer) SendMail(ctx context.Context, msg *ports.MailMessage) (string, error) {
	req := sendgrid.GetRequest(m.key, endpoint, m.host)
	req.Method = rest.Post
	req.Body = sgmail.GetRequestBody(m.prepare(msg))

	res, err := rest.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}

	messageID := ""
	if ids := res.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}
	logger.InfoContext(ctx, "Email sent", "provider", "sendgrid", "to", msg.To, "message_id", messageID)
	return messageID, nil
}
