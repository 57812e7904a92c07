package usecase

import (
	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/services/contacts"
)

// ContactUC implements the contact and invitation lifecycle
type ContactUC struct {
	contactRepo contacts.ContactRepo
	inviteRepo  contacts.InvitationRepo
	strategies  []InviteStrategy
	cfg         *models.Config
}

// NewContactUC creates a new contact usecase. Delivery strategies are
// registered in selection order: SMS first, email as fallback.
func NewContactUC(
	contactRepo contacts.ContactRepo,
	inviteRepo contacts.InvitationRepo,
	smsGW contacts.SMSGW,
	emailGW contacts.EmailGW,
	cfg *models.Config,
) *ContactUC {
	return &ContactUC{
		contactRepo: contactRepo,
		inviteRepo:  inviteRepo,
		strategies: []InviteStrategy{
			NewSMSInviteStrategy(smsGW, cfg),
			NewEmailInviteStrategy(emailGW, cfg),
		},
		cfg: cfg,
	}
}
