package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	OTP      OTPConfig
	SMS      SMSConfig
	SMTP     SMTPConfig
	Invite   InviteConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig contains the OTP engine thresholds.
// Values are injected at construction time so tests can use small ones.
type OTPConfig struct {
	ExpiryMinutes         int
	MaxFailedAttempts     int
	MaxResendAttempts     int
	ResendCooldownMinutes int
	// DebugReturnCode returns the raw code to the caller when the SMS
	// provider is unconfigured. Never enable outside local environments.
	DebugReturnCode bool
}

// SMSConfig contains SMS provider credentials
type SMSConfig struct {
	APIKey         string
	Sender         string
	BaseURL        string
	TimeoutSeconds int
}

// SMTPConfig contains email delivery configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// InviteConfig contains invitation delivery configuration
type InviteConfig struct {
	BaseURL     string // deep-link base, invite token is appended
	TokenLength int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
