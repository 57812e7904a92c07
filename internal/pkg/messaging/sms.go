package messaging

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/danisworo/jualin/internal/pkg/models"
)

// SMSClient sends text messages through the seven.io HTTP gateway.
// A client with an empty API key is considered unconfigured; callers decide
// whether that is fatal or a degraded mode.
type SMSClient struct {
	cfg    models.SMSConfig
	client *http.Client
}

// NewSMSClient creates a new SMS client
func NewSMSClient(cfg models.SMSConfig) *SMSClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &SMSClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// IsConfigured reports whether the provider credentials are present
func (s *SMSClient) IsConfigured() bool {
	return s.cfg.APIKey != ""
}

// SendSMS delivers a text message to an E.164 phone number.
// API: POST {base}/sms, X-Api-Key header, form body to/text/from.
func (s *SMSClient) SendSMS(ctx context.Context, to, body string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("sms provider not configured")
	}

	form := url.Values{}
	form.Set("to", to)
	form.Set("text", body)
	if s.cfg.Sender != "" {
		form.Set("from", s.cfg.Sender)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/sms", bytes.NewBufferString(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Api-Key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms send failed with status %d", resp.StatusCode)
	}

	return nil
}
