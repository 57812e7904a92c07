package messaging

import (
	"fmt"
	"net/smtp"

	"github.com/danisworo/jualin/internal/pkg/models"
)

// EmailClient sends HTML email over SMTP
type EmailClient struct {
	cfg models.SMTPConfig
	// send is swappable in tests; defaults to smtp.SendMail
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailClient creates a new email client
func NewEmailClient(cfg models.SMTPConfig) *EmailClient {
	return &EmailClient{
		cfg:  cfg,
		send: smtp.SendMail,
	}
}

// IsConfigured reports whether SMTP credentials are present
func (e *EmailClient) IsConfigured() bool {
	return e.cfg.Host != "" && e.cfg.From != ""
}

// SendEmail delivers an HTML email to a single recipient
func (e *EmailClient) SendEmail(to, subject, html string) error {
	if !e.IsConfigured() {
		return fmt.Errorf("email provider not configured")
	}

	message := fmt.Sprintf("From: %s\r\n", e.cfg.From)
	message += fmt.Sprintf("To: %s\r\n", to)
	message += fmt.Sprintf("Subject: %s\r\n", subject)
	message += "MIME-Version: 1.0\r\n"
	message += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	message += "\r\n"
	message += html

	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)
	var auth smtp.Auth
	if e.cfg.Username != "" {
		auth = smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.Host)
	}

	if err := e.send(addr, auth, e.cfg.From, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
