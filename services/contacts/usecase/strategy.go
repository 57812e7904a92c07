package usecase

import (
	"context"
	"fmt"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/services/contacts"
)

// InviteStrategy is one delivery channel for invitations. Adding a channel
// means adding a variant and appending it to the selection list; the
// selection algorithm itself never changes.
type InviteStrategy interface {
	Send(ctx context.Context, contact *models.Contact, token string) error
	CanHandle(contact *models.Contact) bool
	Channel() string
}

// selectStrategy picks the first registered strategy able to reach the
// contact.
func (uc *ContactUC) selectStrategy(contact *models.Contact) (InviteStrategy, error) {
	for _, s := range uc.strategies {
		if s.CanHandle(contact) {
			return s, nil
		}
	}
	return nil, apperrors.New(apperrors.CodeNoSuitableMethod, "contact has no usable delivery channel")
}

// SMSInviteStrategy delivers invitations as a deep-link-bearing text message
type SMSInviteStrategy struct {
	gw  contacts.SMSGW
	cfg *models.Config
}

// NewSMSInviteStrategy creates the SMS delivery strategy
func NewSMSInviteStrategy(gw contacts.SMSGW, cfg *models.Config) *SMSInviteStrategy {
	return &SMSInviteStrategy{gw: gw, cfg: cfg}
}

// CanHandle reports whether the contact is reachable over SMS
func (s *SMSInviteStrategy) CanHandle(contact *models.Contact) bool {
	return s.gw != nil && contact.HasPhone()
}

// Channel returns the delivery method identifier
func (s *SMSInviteStrategy) Channel() string {
	return models.InviteMethodSMS
}

// Send renders and delivers the invitation SMS
func (s *SMSInviteStrategy) Send(ctx context.Context, contact *models.Contact, token string) error {
	body := fmt.Sprintf(
		"Hi %s! You have been invited to join %s. Tap to accept: %s/%s",
		contact.FullName, s.cfg.App.Name, s.cfg.Invite.BaseURL, token,
	)

	if err := s.gw.SendSMS(ctx, *contact.PhoneNumber, body); err != nil {
		return apperrors.Wrap(apperrors.CodeFailedToSendSMS, "failed to send invitation sms", err)
	}

	return nil
}

// EmailInviteStrategy delivers invitations as an HTML email
type EmailInviteStrategy struct {
	gw  contacts.EmailGW
	cfg *models.Config
}

// NewEmailInviteStrategy creates the email delivery strategy
func NewEmailInviteStrategy(gw contacts.EmailGW, cfg *models.Config) *EmailInviteStrategy {
	return &EmailInviteStrategy{gw: gw, cfg: cfg}
}

// CanHandle reports whether the contact is reachable over email
func (s *EmailInviteStrategy) CanHandle(contact *models.Contact) bool {
	return s.gw != nil && contact.HasEmail()
}

// Channel returns the delivery method identifier
func (s *EmailInviteStrategy) Channel() string {
	return models.InviteMethodEmail
}

// Send renders and delivers the invitation email
func (s *EmailInviteStrategy) Send(ctx context.Context, contact *models.Contact, token string) error {
	subject := fmt.Sprintf("You're invited to join %s", s.cfg.App.Name)
	html := fmt.Sprintf(
		`<html><body>
<p>Hi %s,</p>
<p>You have been invited to join %s.</p>
<p><a href="%s/%s">Accept your invitation</a></p>
</body></html>`,
		contact.FullName, s.cfg.App.Name, s.cfg.Invite.BaseURL, token,
	)

	if err := s.gw.SendEmail(*contact.Email, subject, html); err != nil {
		return apperrors.Wrap(apperrors.CodeFailedToSendEmail, "failed to send invitation email", err)
	}

	return nil
}
