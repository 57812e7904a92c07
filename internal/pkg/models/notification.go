package models

// PushNotificationEvent is published to the notification side-channel.
// Delivery is best-effort; nothing in the main flows waits on it.
type PushNotificationEvent struct {
	DeviceTokens []string          `json:"device_tokens"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Data         map[string]string `json:"data,omitempty"`
}

// DeviceToken represents a registered push target for a user
type DeviceToken struct {
	UserID     string `json:"user_id"`
	Token      string `json:"token"`
	DeviceType string `json:"device_type,omitempty"`
	DeviceOS   string `json:"device_os,omitempty"`
}
