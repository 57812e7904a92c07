package gateway

import (
	"context"
	"fmt"

	"github.com/danisworo/jualin/internal/pkg/messaging"
)

// MessagingGateway adapts the shared SMS and email clients to the contact
// service's outbound interfaces.
type MessagingGateway struct {
	sms   *messaging.SMSClient
	email *messaging.EmailClient
}

// NewMessagingGateway creates a new messaging gateway
func NewMessagingGateway(sms *messaging.SMSClient, email *messaging.EmailClient) *MessagingGateway {
	return &MessagingGateway{
		sms:   sms,
		email: email,
	}
}

// SendSMS delivers a text message
func (g *MessagingGateway) SendSMS(ctx context.Context, to, body string) error {
	if err := g.sms.SendSMS(ctx, to, body); err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	return nil
}

// SendEmail delivers an HTML email
func (g *MessagingGateway) SendEmail(to, subject, html string) error {
	if err := g.email.SendEmail(to, subject, html); err != nil {
		return fmt.Errorf("email gateway: %w", err)
	}
	return nil
}
