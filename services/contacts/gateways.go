package contacts

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/danisworo/jualin/services/contacts SMSGW,EmailGW

// SMSGW defines the outbound SMS gateway surface
type SMSGW interface {
	SendSMS(ctx context.Context, to, body string) error
}

// EmailGW defines the outbound email gateway surface
type EmailGW interface {
	SendEmail(to, subject, html string) error
}
