package ports

import "context"

// ═══════════════════════════════════════════════════════════════════════════════
// Notifier Ports - ช่องทางส่งการแจ้งเตือน (Email, SMS)
// ═══════════════════════════════════════════════════════════════════════════════

// MailMessage is one outbound email
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// SMSMessage is one outbound text message; To is E.164
type SMSMessage struct {
	To   string
	Body string
}

// MailerPort sends a single email and returns the provider's message id
type MailerPort interface {
	SendMail(ctx context.Context, msg *MailMessage) (string, error)
	ProviderName() string
}

// SMSPort sends a single SMS and returns the provider's message id
type SMSPort interface {
	SendSMS(ctx context.Context, msg *SMSMessage) (string, error)
	ProviderName() string
}
