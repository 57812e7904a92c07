package constants

// Redis key patterns
const (
	// KeyDeviceTokens stores the set of push device tokens for a user.
	// Pattern: device_tokens:%s (user ID)
	KeyDeviceTokens = "device_tokens:%s"
)
