package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danisworo/jualin/internal/pkg/constants"
	"github.com/danisworo/jualin/internal/pkg/logger"
	"github.com/danisworo/jualin/internal/pkg/models"
	natspkg "github.com/danisworo/jualin/internal/pkg/nats"
	"github.com/danisworo/jualin/internal/pkg/retry"
)

// NotificationGateway publishes push notification events to NATS. The
// notification worker consuming the subject owns actual device delivery.
type NotificationGateway struct {
	client  *natspkg.Client
	retrier *retry.Retrier
}

// NewNotificationGateway creates a new notification gateway
func NewNotificationGateway(client *natspkg.Client) *NotificationGateway {
	return &NotificationGateway{
		client:  client,
		retrier: retry.New(retry.DefaultConfig()),
	}
}

// PublishPushNotification publishes a push notification event. Publishes
// are retried with backoff; events are idempotent on the consumer side.
func (g *NotificationGateway) PublishPushNotification(ctx context.Context, event *models.PushNotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal push notification event: %w", err)
	}

	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.Publish(constants.SubjectNotificationPush, data)
	})
	if err != nil {
		return fmt.Errorf("failed to publish push notification event: %w", err)
	}

	logger.Debug("Published push notification event",
		logger.Int("device_tokens", len(event.DeviceTokens)),
		logger.String("title", event.Title))

	return nil
}
