package constants

// NATS subjects
const (
	// SubjectNotificationPush carries best-effort push notification events
	// consumed by the notification worker.
	SubjectNotificationPush = "notification.push"
)
